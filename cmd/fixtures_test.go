package cmd

import (
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func renderStatsFixture() renderer.RenderStats {
	return renderer.RenderStats{
		Width:           16,
		Height:          9,
		TotalPixels:     144,
		SamplesPerPixel: 2,
		TotalSamples:    288,
		RaySegments:     600,
		Escaped:         200,
		Absorbed:        10,
		DepthExhausted:  78,
		Duration:        1500 * time.Millisecond,
	}
}
