package game

import "math"

// FPSCounter measures frames per second over one-second windows.
type FPSCounter struct {
	FrameCount int
	LastUpdate float64
	Current    float64
}

// Update counts a frame at currentTime in milliseconds.
func (f *FPSCounter) Update(currentTime float64) {
	f.FrameCount++

	elapsed := currentTime - f.LastUpdate
	if elapsed >= 1000 {
		f.Current = math.Round(float64(f.FrameCount) / (elapsed / 1000))
		f.FrameCount = 0
		f.LastUpdate = currentTime
	}
}
