package audio

// AudioConfig is the active synthesizer configuration.
var AudioConfig = Config{
	// Master settings
	SampleRate:   44100,
	MasterVolume: 0.7,

	// Playback
	QueueDepth: 16,

	// Filters
	FilterQ: 0.7071,

	// Pop effect
	PopMinDuration:  0.15,
	PopDurationJit:  0.1,
	PopBaseFreq:     300,
	PopFreqRange:    400,
	PopFreqJitter:   100,
	PopNoiseLevel:   0.3,
	PopSparkleRatio: 2.5,
}
