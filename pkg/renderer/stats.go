package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Samples taken for every pixel
	TotalSamples    int           // Total number of camera rays
	RaySegments     int           // World queries across all bounces
	Escaped         int           // Paths that reached the background
	Absorbed        int           // Paths terminated by a material
	DepthExhausted  int           // Paths cut off at the bounce limit
	Duration        time.Duration // Wall-clock render time
}

// AverageBounces returns the mean number of world queries per camera ray
func (s RenderStats) AverageBounces() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.RaySegments) / float64(s.TotalSamples)
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// pathOutcome is how a single camera path terminated
type pathOutcome int

const (
	pathEscaped pathOutcome = iota
	pathAbsorbed
	pathDepthExhausted
)

// record adds one traced path to the statistics
func (s *RenderStats) record(outcome pathOutcome, segments int) {
	s.TotalSamples++
	s.RaySegments += segments
	switch outcome {
	case pathEscaped:
		s.Escaped++
	case pathAbsorbed:
		s.Absorbed++
	case pathDepthExhausted:
		s.DepthExhausted++
	}
}
