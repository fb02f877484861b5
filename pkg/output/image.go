package output

import (
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// ImageWriter collects pixels in memory and encodes the finished image
type ImageWriter struct {
	Buffer
	w      io.Writer
	name   string
	encode func(io.Writer, image.Image) error
}

// NewPNGWriter creates a sink that writes a PNG file on Finish
func NewPNGWriter(w io.Writer) *ImageWriter {
	return &ImageWriter{w: w, name: "png", encode: png.Encode}
}

// NewBMPWriter creates a sink that writes a BMP file on Finish
func NewBMPWriter(w io.Writer) *ImageWriter {
	return &ImageWriter{w: w, name: "bmp", encode: bmp.Encode}
}

// Finish encodes the buffered image
func (iw *ImageWriter) Finish() error {
	if err := iw.Buffer.Finish(); err != nil {
		return err
	}
	return errors.Wrapf(iw.encode(iw.w, iw.Image()), "encode %s", iw.name)
}
