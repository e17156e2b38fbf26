package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/simukka/pop-bubbles/common"
)

// ErrNotReady is returned by backends that could not open an output device.
var ErrNotReady = errors.New("audio: output not available")

// Backend plays rendered mono samples. Implementations must not block for the
// duration of the sound.
type Backend interface {
	Play(samples []float32, sampleRate int) error
}

// AudioManager turns sound events into rendered effects and hands them to a
// backend. Every failure is logged and swallowed; callers never see audio errors.
type AudioManager struct {
	mu      sync.Mutex
	backend Backend
	rng     common.Rand
	volume  float64
	muted   bool
	played  int
}

// NewAudioManager creates a manager. A nil backend leaves audio unavailable.
func NewAudioManager(backend Backend, rng common.Rand) *AudioManager {
	return &AudioManager{
		backend: backend,
		rng:     rng,
		volume:  AudioConfig.MasterVolume,
	}
}

// Ready reports whether a backend is attached.
func (am *AudioManager) Ready() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.backend != nil
}

// SetBackend attaches a backend, typically after the first user gesture in a browser.
func (am *AudioManager) SetBackend(b Backend) {
	am.mu.Lock()
	am.backend = b
	am.mu.Unlock()
}

// SetMuted toggles output.
func (am *AudioManager) SetMuted(muted bool) {
	am.mu.Lock()
	am.muted = muted
	am.mu.Unlock()
}

// Muted reports the mute flag.
func (am *AudioManager) Muted() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.muted
}

// SetVolume sets the master volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.mu.Lock()
	am.volume = clamp01(volume)
	am.mu.Unlock()
}

// Played returns how many effects reached the backend.
func (am *AudioManager) Played() int {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.played
}

// Emit plays an event, fire-and-forget.
func (am *AudioManager) Emit(ev Event) {
	if err := am.play(ev); err != nil {
		common.Warn("sound playback failed", "event", ev.Kind, "err", err)
	}
}

func (am *AudioManager) play(ev Event) (err error) {
	am.mu.Lock()
	backend, muted, volume, rng := am.backend, am.muted, am.volume, am.rng
	am.mu.Unlock()

	if backend == nil || muted {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio: backend panic: %v", r)
		}
	}()

	g, err := BuildGraph(ev, rng)
	if err != nil {
		return err
	}
	samples := Render(g, AudioConfig.SampleRate, volume)
	if err := backend.Play(samples, AudioConfig.SampleRate); err != nil {
		return fmt.Errorf("play %s: %w", ev.Kind, err)
	}

	am.mu.Lock()
	am.played++
	am.mu.Unlock()
	common.Debug("sound played", "event", ev.Kind, "samples", len(samples))
	return nil
}

// DiscardBackend accepts and drops all audio.
type DiscardBackend struct{}

// Play implements Backend.
func (DiscardBackend) Play([]float32, int) error { return nil }
