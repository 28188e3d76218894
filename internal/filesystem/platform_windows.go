//go:build windows
// +build windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// getCreatedTime gets the creation time from FileInfo (Windows)
func getCreatedTime(info os.FileInfo) time.Time {
	stat := info.Sys().(*syscall.Win32FileAttributeData)
	return time.Unix(0, stat.CreationTime.Nanoseconds())
}
