package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// PPMWriter streams pixels as a portable pixmap, either plain text (P3) or binary (P6)
type PPMWriter struct {
	w       *bufio.Writer
	binary  bool
	total   int
	written int
}

// NewPPMWriter creates a plain text P3 writer
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// NewBinaryPPMWriter creates a binary P6 writer
func NewBinaryPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w), binary: true}
}

// Begin writes the header
func (p *PPMWriter) Begin(width, height int) error {
	magic := "P3"
	if p.binary {
		magic = "P6"
	}
	p.total = width * height
	p.written = 0

	_, err := fmt.Fprintf(p.w, "%s\n%d %d\n255\n", magic, width, height)
	return errors.Wrap(err, "write ppm header")
}

// WritePixel writes one pixel
func (p *PPMWriter) WritePixel(r, g, b uint8) error {
	if p.written >= p.total {
		return errors.Wrapf(ErrImageOverflow, "%d pixels", p.total)
	}
	p.written++

	if p.binary {
		_, err := p.w.Write([]byte{r, g, b})
		return errors.Wrap(err, "write ppm pixel")
	}
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b)
	return errors.Wrap(err, "write ppm pixel")
}

// Finish flushes buffered output
func (p *PPMWriter) Finish() error {
	if p.written != p.total {
		return errors.Wrapf(ErrImageIncomplete, "%d of %d pixels", p.written, p.total)
	}
	return errors.Wrap(p.w.Flush(), "flush ppm")
}
