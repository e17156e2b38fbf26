package audio

// Config holds the synthesizer and playback tuning knobs.
type Config struct {
	// Master settings
	SampleRate   int     // Render rate in Hz
	MasterVolume float64 // 0.0 - 1.0, applied to every rendered effect

	// Playback
	QueueDepth int // Pending events held by a Queue before new ones are dropped

	// Filters
	FilterQ float64 // Resonance of the low-pass used by slow-mo and life-lost

	// Pop effect
	PopMinDuration  float64 // Seconds
	PopDurationJit  float64 // Extra random seconds on top of PopMinDuration
	PopBaseFreq     float64 // Hz at pitch hint 0
	PopFreqRange    float64 // Hz added at pitch hint 1
	PopFreqJitter   float64 // Total random spread in Hz
	PopNoiseLevel   float64 // Peak amplitude of the white noise source
	PopSparkleRatio float64 // Sparkle frequency multiple for perfect hits
}
