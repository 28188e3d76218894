package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kycflow/docpack/pkg/models"
)

// Stat collects filesystem-level metadata for a path. This is the cheap
// first stage of assembly; content extraction only runs when it succeeds.
func Stat(path string) (*models.FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	name := filepath.Base(path)

	return &models.FileStat{
		Path:      path,
		Name:      name,
		Extension: filepath.Ext(name),
		Size:      info.Size(),
		Created:   getCreatedTime(info).UTC(),
		Modified:  info.ModTime().UTC(),
	}, nil
}

// ParseSize parses size string (e.g., "650K", "1M") to bytes
func ParseSize(sizeStr string) int64 {
	if len(sizeStr) == 0 {
		return 0
	}

	// Get last character (unit)
	last := sizeStr[len(sizeStr)-1]
	var multiplier int64 = 1

	switch last {
	case 'K', 'k':
		multiplier = 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	case 'M', 'm':
		multiplier = 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	case 'G', 'g':
		multiplier = 1024 * 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	}

	// Parse number
	var size int64
	fmt.Sscanf(sizeStr, "%d", &size)

	return size * multiplier
}
