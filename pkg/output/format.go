package output

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Format identifies an image container
type Format string

const (
	FormatPPM       Format = "ppm"
	FormatPPMBinary Format = "ppm-binary"
	FormatPNG       Format = "png"
	FormatBMP       Format = "bmp"
)

// ErrUnknownFormat is returned for unsupported format names or extensions
var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists every supported format
func Formats() []Format {
	return []Format{FormatPPM, FormatPPMBinary, FormatPNG, FormatBMP}
}

// ParseFormat resolves a format name
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "extension of %q", path)
}

// NewWriter creates a pixel sink that encodes format to w
func NewWriter(format Format, w io.Writer) (renderer.PixelSink, error) {
	switch format {
	case FormatPPM:
		return NewPPMWriter(w), nil
	case FormatPPMBinary:
		return NewBinaryPPMWriter(w), nil
	case FormatPNG:
		return NewPNGWriter(w), nil
	case FormatBMP:
		return NewBMPWriter(w), nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}
