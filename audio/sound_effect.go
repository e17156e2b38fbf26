package audio

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/simukka/pop-bubbles/common"
)

// ErrUnknownEvent is returned for an event kind without a sound definition.
var ErrUnknownEvent = errors.New("audio: unknown event")

// EventKind names a sound effect request.
type EventKind int

const (
	EventPop EventKind = iota
	EventMiss
	EventSlowMo
	EventLifeLost
	EventGameOver
)

var eventNames = [...]string{"pop", "miss", "slowMo", "lifeLost", "gameOver"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// ParseEventKind resolves an event name, case-insensitively.
func ParseEventKind(name string) (EventKind, error) {
	for i, n := range eventNames {
		if strings.EqualFold(n, name) {
			return EventKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// Event is a one-way sound command. Velocity and PitchHint only apply to pops
// and are expected in [0, 1].
type Event struct {
	Kind      EventKind
	Velocity  float64
	PitchHint float64
	Perfect   bool
}

// PopEvent builds a pop request.
func PopEvent(velocity, pitchHint float64, perfect bool) Event {
	return Event{Kind: EventPop, Velocity: clamp01(velocity), PitchHint: clamp01(pitchHint), Perfect: perfect}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// envelope builds the common attack-then-exponential-fade gain curve.
func envelope(peak, attack, end float64) *Param {
	return NewParam(0).
		SetValueAtTime(0, 0).
		LinearRampToValueAtTime(peak, attack).
		ExponentialRampToValueAtTime(0.001, end)
}

// BuildGraph returns the signal graph for an event. rng supplies the per-play
// variation of pops.
func BuildGraph(ev Event, rng common.Rand) (*Graph, error) {
	switch ev.Kind {
	case EventPop:
		return popGraph(ev, rng), nil
	case EventMiss:
		return missGraph(), nil
	case EventSlowMo:
		return slowMoGraph(), nil
	case EventLifeLost:
		return lifeLostGraph(), nil
	case EventGameOver:
		return gameOverGraph(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEvent, ev.Kind)
	}
}

// popGraph is a sine tone with a short noise burst; perfect hits add a sparkle
// an octave and a half above.
func popGraph(ev Event, rng common.Rand) *Graph {
	cfg := AudioConfig
	duration := cfg.PopMinDuration + rng.Random()*cfg.PopDurationJit
	freq := cfg.PopBaseFreq + ev.PitchHint*cfg.PopFreqRange + (rng.Random()-0.5)*cfg.PopFreqJitter

	const attack, decay = 0.01, 0.05
	sustain := 0.3 + ev.Velocity*0.4

	g := &Graph{}
	g.Add(&Voice{
		Source: NewOscillator(WaveSine, freq),
		Gain: NewParam(0).
			SetValueAtTime(0, 0).
			LinearRampToValueAtTime(sustain, attack).
			LinearRampToValueAtTime(sustain*0.7, attack+decay).
			ExponentialRampToValueAtTime(0.001, duration),
		Stop: duration,
	})

	noiseDuration := duration * 0.6
	g.Add(&Voice{
		Source: &Noise{Rand: rng, Level: cfg.PopNoiseLevel},
		Gain:   envelope(0.2+ev.Velocity*0.3, attack, noiseDuration),
		Stop:   noiseDuration,
	})

	if ev.Perfect {
		g.Add(&Voice{
			Source: NewOscillator(WaveSine, freq*cfg.PopSparkleRatio),
			Gain:   envelope(0.1, 0.02, 0.1),
			Stop:   0.1,
		})
	}
	return g
}

// missGraph is a low thud falling from 120 Hz to 80 Hz.
func missGraph() *Graph {
	const duration = 0.2
	osc := NewOscillator(WaveSine, 120)
	osc.Frequency.ExponentialRampToValueAtTime(80, duration)

	g := &Graph{}
	g.Add(&Voice{Source: osc, Gain: envelope(0.1, 0.05, duration), Stop: duration})
	return g
}

// slowMoGraph is a filtered whoosh sweeping down.
func slowMoGraph() *Graph {
	const duration = 0.7
	osc := NewOscillator(WaveSine, 200)
	osc.Frequency.ExponentialRampToValueAtTime(50, duration)
	lp := NewLowPass(1000, AudioConfig.FilterQ)
	lp.Frequency.ExponentialRampToValueAtTime(200, duration)

	g := &Graph{}
	g.Add(&Voice{Source: osc, Filter: lp, Gain: envelope(0.15, 0.1, duration), Stop: duration})
	return g
}

// lifeLostGraph layers a filtered descending tone with a lower heartbeat.
func lifeLostGraph() *Graph {
	const duration = 0.8
	osc := NewOscillator(WaveSine, 200)
	osc.Frequency.ExponentialRampToValueAtTime(80, duration)
	lp := NewLowPass(800, AudioConfig.FilterQ)
	lp.Frequency.ExponentialRampToValueAtTime(200, duration)

	heartbeat := NewOscillator(WaveSine, 150)
	heartbeat.Frequency.ExponentialRampToValueAtTime(60, duration)

	g := &Graph{}
	g.Add(&Voice{
		Source: osc,
		Filter: lp,
		Gain: NewParam(0).
			SetValueAtTime(0, 0).
			LinearRampToValueAtTime(0.15, 0.05).
			LinearRampToValueAtTime(0.1, 0.3).
			ExponentialRampToValueAtTime(0.001, duration),
		Stop: duration,
	})
	g.Add(&Voice{
		Source: heartbeat,
		Gain: NewParam(0).
			SetValueAtTime(0, 0).
			LinearRampToValueAtTime(0.08, 0.1).
			LinearRampToValueAtTime(0.05, 0.4).
			ExponentialRampToValueAtTime(0.001, duration),
		Stop: duration,
	})
	return g
}

// gameOverGraph is a long descending tone with vibrato.
func gameOverGraph() *Graph {
	const duration = 2.0
	osc := NewOscillator(WaveSine, 300)
	osc.Frequency.ExponentialRampToValueAtTime(100, duration)
	osc.Vibrato = &Vibrato{Rate: 5, Depth: 10}

	g := &Graph{}
	g.Add(&Voice{Source: osc, Gain: envelope(0.2, 0.1, duration), Stop: duration})
	return g
}
