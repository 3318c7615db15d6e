package renderer

import "time"

// RenderStats contains statistics about a finished or aborted render
type RenderStats struct {
	Pixels  int           // Pixels written to the canvas
	Rows    int           // Complete rows written
	Tasks   int           // Bands rendered
	Workers int           // Goroutines used
	Elapsed time.Duration // Wall-clock render time
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Elapsed.Seconds()
}

// merge folds the counts of one band into the totals
func (s *RenderStats) merge(band RenderStats) {
	s.Pixels += band.Pixels
	s.Rows += band.Rows
	s.Tasks += band.Tasks
}
