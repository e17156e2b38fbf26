//go:build !js
// +build !js

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerBackend plays effects through the system audio device.
type SpeakerBackend struct {
	rate beep.SampleRate
}

// NewSpeakerBackend opens the default output device at sampleRate.
func NewSpeakerBackend(sampleRate int) (*SpeakerBackend, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotReady, err)
	}
	return &SpeakerBackend{rate: rate}, nil
}

// Play implements Backend.
func (b *SpeakerBackend) Play(samples []float32, sampleRate int) error {
	var s beep.Streamer = NewStreamer(samples)
	if src := beep.SampleRate(sampleRate); src != b.rate {
		s = beep.Resample(4, src, b.rate, s)
	}
	speaker.Play(s)
	return nil
}

// Close releases the output device.
func (b *SpeakerBackend) Close() {
	speaker.Clear()
	speaker.Close()
}

// samplesStreamer streams mono samples to both channels.
type samplesStreamer struct {
	samples []float32
	pos     int
}

// NewStreamer wraps rendered mono samples as a beep.Streamer.
func NewStreamer(samples []float32) beep.Streamer {
	return &samplesStreamer{samples: samples}
}

func (s *samplesStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(buf) && s.pos < len(s.samples) {
		v := float64(s.samples[s.pos])
		buf[n][0] = v
		buf[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *samplesStreamer) Err() error { return nil }
