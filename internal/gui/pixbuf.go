package gui

import (
	"image"

	"github.com/gotk3/gotk3/gdk"
	"golang.org/x/image/draw"
)

// toNRGBA converts any raster to non-premultiplied RGBA anchored at the origin,
// the layout gdk pixbufs use.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// toPixbuf copies img into a new RGBA pixbuf row by row, honouring its rowstride.
func toPixbuf(img image.Image) (*gdk.Pixbuf, error) {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	pb, err := gdk.PixbufNew(gdk.COLORSPACE_RGB, true, 8, w, h)
	if err != nil {
		return nil, err
	}

	pixels := pb.GetPixels()
	stride := pb.GetRowstride()
	for y := 0; y < h; y++ {
		copy(pixels[y*stride:y*stride+w*4], src.Pix[y*src.Stride:y*src.Stride+w*4])
	}
	return pb, nil
}
