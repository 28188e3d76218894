//go:build !windows
// +build !windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// getCreatedTime gets the creation time from FileInfo (Unix). Unix does not
// expose a true birth time through stat, so ctime stands in for it.
func getCreatedTime(info os.FileInfo) time.Time {
	stat := info.Sys().(*syscall.Stat_t)
	return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
}
