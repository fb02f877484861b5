package renderer

import (
	"testing"
	"time"
)

func TestRenderStats_Record(t *testing.T) {
	var stats RenderStats
	stats.record(pathEscaped, 1)
	stats.record(pathAbsorbed, 3)
	stats.record(pathDepthExhausted, 4)
	stats.record(pathEscaped, 4)

	if stats.TotalSamples != 4 || stats.RaySegments != 12 {
		t.Errorf("unexpected totals %+v", stats)
	}
	if stats.Escaped != 2 || stats.Absorbed != 1 || stats.DepthExhausted != 1 {
		t.Errorf("unexpected outcomes %+v", stats)
	}
	if got := stats.AverageBounces(); got != 3 {
		t.Errorf("AverageBounces() = %f, want 3", got)
	}
}

func TestRenderStats_EmptyRates(t *testing.T) {
	var stats RenderStats
	if stats.AverageBounces() != 0 || stats.SamplesPerSecond() != 0 {
		t.Errorf("empty stats should report zero rates")
	}

	stats.TotalSamples = 100
	stats.Duration = 2 * time.Second
	if got := stats.SamplesPerSecond(); got != 50 {
		t.Errorf("SamplesPerSecond() = %f, want 50", got)
	}
}
