package output

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// ErrImageOverflow is returned when more pixels are written than the image holds
var ErrImageOverflow = errors.New("pixel written past the end of the image")

// ErrImageIncomplete is returned when an image is finished before every pixel was written
var ErrImageIncomplete = errors.New("image finished before all pixels were written")

// Buffer is an in-memory pixel sink holding packed RGB triples
type Buffer struct {
	Width, Height int
	Pix           []uint8
}

// Begin resets the buffer for an image of the given size
func (b *Buffer) Begin(width, height int) error {
	b.Width, b.Height = width, height
	b.Pix = make([]uint8, 0, width*height*3)
	return nil
}

// WritePixel appends the next pixel in scan order
func (b *Buffer) WritePixel(r, g, bl uint8) error {
	if len(b.Pix) >= b.Width*b.Height*3 {
		return errors.Wrapf(ErrImageOverflow, "%dx%d image", b.Width, b.Height)
	}
	b.Pix = append(b.Pix, r, g, bl)
	return nil
}

// Finish checks that the image is complete
func (b *Buffer) Finish() error {
	if written := len(b.Pix) / 3; written != b.Width*b.Height {
		return errors.Wrapf(ErrImageIncomplete, "%d of %d pixels", written, b.Width*b.Height)
	}
	return nil
}

// At returns the pixel at column i of row j, counted from the top
func (b *Buffer) At(i, j int) (r, g, bl uint8) {
	offset := (j*b.Width + i) * 3
	return b.Pix[offset], b.Pix[offset+1], b.Pix[offset+2]
}

// Image converts the buffer to an opaque RGBA image
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for n := 0; n < len(b.Pix)/3; n++ {
		img.SetRGBA(n%b.Width, n/b.Width, color.RGBA{
			R: b.Pix[3*n],
			G: b.Pix[3*n+1],
			B: b.Pix[3*n+2],
			A: 255,
		})
	}
	return img
}
