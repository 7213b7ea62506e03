package cache

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"rwall/internal/log"
)

// GetThumbnail returns a raster of at most ThumbnailSize on its longest edge
// for imagePath. A fresh cached PNG under root is used when it loads; otherwise
// the thumbnail is regenerated from the source and written back to the cache.
func GetThumbnail(imagePath, root string) (image.Image, error) {
	thumbPath := ThumbnailPath(imagePath, root)

	if IsFresh(imagePath, thumbPath) {
		img, err := loadPNG(thumbPath)
		if err == nil {
			return img, nil
		}
		// Corrupt entry, fall through and rebuild it.
		log.Printf("Failed to load cached thumbnail %s: %v", thumbPath, err)
	}

	return regenerate(imagePath, thumbPath)
}

// IsFresh reports whether thumbPath is at least as new as imagePath.
// A failed stat on either side means not fresh.
func IsFresh(imagePath, thumbPath string) bool {
	src, err := os.Stat(imagePath)
	if err != nil {
		return false
	}
	thumb, err := os.Stat(thumbPath)
	if err != nil {
		return false
	}
	return !thumb.ModTime().Before(src.ModTime())
}

func regenerate(imagePath, thumbPath string) (image.Image, error) {
	log.Debugf("Generating thumbnail for %s", imagePath)

	thumb, err := decodeThumbnail(imagePath)
	if err != nil {
		return nil, err
	}

	err = writeAtomic(thumbPath, func(w io.Writer) error {
		return png.Encode(w, thumb)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCacheWriteFailed, thumbPath, err)
	}

	// A source stamped in the future would leave the new file stale forever.
	if src, err := os.Stat(imagePath); err == nil {
		if fi, err := os.Stat(thumbPath); err == nil && fi.ModTime().Before(src.ModTime()) {
			_ = os.Chtimes(thumbPath, src.ModTime(), src.ModTime())
		}
	}

	return thumb, nil
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return png.Decode(file)
}
