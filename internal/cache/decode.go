package cache

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
)

// decodeThumbnail decodes the source image and returns it bounded by
// ThumbnailSize on its longest edge. Smaller images are returned as is.
func decodeThumbnail(imagePath string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(imagePath), ".svg") {
		return rasterizeSVG(imagePath, ThumbnailSize)
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailed, imagePath, err)
	}

	// Thumbnail preserves aspect ratio and never upscales.
	return resize.Thumbnail(ThumbnailSize, ThumbnailSize, img, resize.Lanczos3), nil
}

// rasterizeSVG renders a vector image straight at thumbnail scale.
func rasterizeSVG(imagePath string, maxEdge int) (image.Image, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	defer file.Close()

	icon, err := oksvg.ReadIconStream(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailed, imagePath, err)
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil, fmt.Errorf("%w: %s: svg has no usable viewBox", ErrDecodeFailed, imagePath)
	}

	w, h := fitWithin(vw, vh, float64(maxEdge))
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return rgba, nil
}

// fitWithin scales (w, h) so the longest edge is at most maxEdge.
func fitWithin(w, h, maxEdge float64) (int, int) {
	scale := math.Min(1, maxEdge/math.Max(w, h))
	tw := int(math.Max(1, math.Round(w*scale)))
	th := int(math.Max(1, math.Round(h*scale)))
	return tw, th
}
