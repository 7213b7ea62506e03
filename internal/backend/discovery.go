// Package backend handles wallpaper file discovery and applying a chosen
// image as the desktop background through an external program.
package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrDirUnreadable = errors.New("directory unreadable")

// validExtensions is the set of supported image suffixes, lowercased.
var validExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".svg":  true,
}

// IsSupported reports whether name carries a supported image suffix, ignoring case.
func IsSupported(name string) bool {
	return validExtensions[strings.ToLower(filepath.Ext(name))]
}

// GetWallpapers scans the given directory (non-recursively) and returns the
// paths of all supported image files found, in directory order.
// An empty directory yields an empty slice and no error.
func GetWallpapers(dir string) ([]string, error) {
	// ReadDir returns entries sorted by filename, which keeps the order stable.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirUnreadable, err)
	}

	wallpapers := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSupported(entry.Name()) {
			wallpapers = append(wallpapers, filepath.Join(dir, entry.Name()))
		}
	}

	return wallpapers, nil
}
