//go:build !js
// +build !js

package audio

import (
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// EncodeWAV writes rendered mono samples as a 16-bit stereo WAV file.
func EncodeWAV(w io.WriteSeeker, samples []float32, sampleRate int) error {
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(w, NewStreamer(samples), format); err != nil {
		return fmt.Errorf("audio: encode wav: %w", err)
	}
	return nil
}
