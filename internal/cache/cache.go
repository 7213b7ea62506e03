// Package cache provides the content-addressed on-disk store used by rwall.
// Thumbnails live in the cache root and downloaded backgrounds in its
// backgrounds/ subdirectory, both named by the MD5 hash of their source string.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rwall/internal/config"
)

const (
	// ThumbnailSize bounds the longest edge of a thumbnail.
	ThumbnailSize = 128

	BackgroundsDir = "backgrounds"

	thumbExt    = ".png"
	downloadExt = ".jpg"
)

var (
	ErrCacheUnavailable = errors.New("cache unavailable")
	ErrDecodeFailed     = errors.New("decode failed")
	ErrCacheWriteFailed = errors.New("cache write failed")
	ErrDownloadFailed   = errors.New("download failed")
)

// Digest returns the 32 character lowercase hex MD5 of s.
// The raw string is hashed; paths are not canonicalised.
func Digest(s string) string {
	hash := md5.Sum([]byte(s))
	return hex.EncodeToString(hash[:])
}

// ThumbnailPath is where the thumbnail of sourcePath lives under root.
func ThumbnailPath(sourcePath, root string) string {
	return filepath.Join(root, Digest(sourcePath)+thumbExt)
}

// DownloadPath is where the download of url lives under bgRoot.
func DownloadPath(url, bgRoot string) string {
	return filepath.Join(bgRoot, Digest(url)+downloadExt)
}

// EnsureRoot returns $HOME/.cache/rwall, creating it and any missing parents.
func EnsureRoot() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("%w: $HOME is not set", ErrCacheUnavailable)
	}
	return ensureDir(filepath.Join(home, config.CacheSubDir))
}

// EnsureBackgrounds returns root/backgrounds, creating it if needed.
func EnsureBackgrounds(root string) (string, error) {
	return ensureDir(filepath.Join(root, BackgroundsDir))
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return abs, nil
}
