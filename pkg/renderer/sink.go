package renderer

// PixelSink receives a rendered image one pixel at a time.
//
// Begin is called once with the image dimensions, WritePixel once per pixel in
// row-major order starting at the top row, and Finish once at the end.
type PixelSink interface {
	Begin(width, height int) error
	WritePixel(r, g, b uint8) error
	Finish() error
}
