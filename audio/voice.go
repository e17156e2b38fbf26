package audio

import (
	"math"

	"github.com/simukka/pop-bubbles/common"
)

// WaveType is an oscillator waveform.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

func (w WaveType) String() string {
	switch w {
	case WaveSine:
		return "Sine"
	case WaveSquare:
		return "Square"
	case WaveSawtooth:
		return "Sawtooth"
	case WaveTriangle:
		return "Triangle"
	default:
		return "Unknown"
	}
}

// Source produces one sample per call. t is graph time in seconds, dt the sample period.
type Source interface {
	Next(t, dt float64) float64
}

// Vibrato modulates an oscillator's frequency by Depth Hz at Rate Hz.
type Vibrato struct {
	Rate  float64
	Depth float64
}

// Oscillator is a periodic source with an automatable frequency.
type Oscillator struct {
	Wave      WaveType
	Frequency *Param
	Vibrato   *Vibrato

	phase float64
}

// NewOscillator creates an oscillator starting at freq Hz.
func NewOscillator(wave WaveType, freq float64) *Oscillator {
	return &Oscillator{
		Wave:      wave,
		Frequency: NewParam(freq).SetValueAtTime(freq, 0),
	}
}

// Next implements Source.
func (o *Oscillator) Next(t, dt float64) float64 {
	var v float64
	switch o.Wave {
	case WaveSine:
		v = math.Sin(2 * math.Pi * o.phase)
	case WaveSquare:
		if o.phase < 0.5 {
			v = 1
		} else {
			v = -1
		}
	case WaveSawtooth:
		v = 2 * (o.phase - 0.5)
	case WaveTriangle:
		v = 1 - 4*math.Abs(o.phase-0.5)
	}

	freq := o.Frequency.ValueAt(t)
	if o.Vibrato != nil {
		freq += o.Vibrato.Depth * math.Sin(2*math.Pi*o.Vibrato.Rate*t)
	}
	o.phase += freq * dt
	o.phase -= math.Floor(o.phase)
	return v
}

// Noise is a white noise source scaled by Level.
type Noise struct {
	Rand  common.Rand
	Level float64
}

// Next implements Source.
func (n *Noise) Next(_, _ float64) float64 {
	return (n.Rand.Random()*2 - 1) * n.Level
}

// LowPass is a second order low-pass filter with an automatable cutoff.
type LowPass struct {
	Frequency *Param
	Q         float64

	x1, x2, y1, y2 float64
}

// NewLowPass creates a low-pass filter with the cutoff starting at freq Hz.
func NewLowPass(freq, q float64) *LowPass {
	return &LowPass{
		Frequency: NewParam(freq).SetValueAtTime(freq, 0),
		Q:         q,
	}
}

// Process filters one sample at graph time t.
func (f *LowPass) Process(x, t float64, sampleRate int) float64 {
	nyquist := float64(sampleRate) / 2
	fc := math.Min(math.Max(f.Frequency.ValueAt(t), 10), nyquist*0.99)
	q := f.Q
	if q <= 0 {
		q = AudioConfig.FilterQ
	}

	w0 := 2 * math.Pi * fc / float64(sampleRate)
	cosW0 := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 - cosW0) / 2
	b1 := 1 - cosW0
	b2 := b0
	a0 := 1 + alpha
	a1 := -2 * cosW0
	a2 := 1 - alpha

	y := (b0*x + b1*f.x1 + b2*f.x2 - a1*f.y1 - a2*f.y2) / a0
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}

// Voice is one source routed through an optional filter and a gain envelope,
// audible between Start and Stop.
type Voice struct {
	Source Source
	Filter *LowPass
	Gain   *Param
	Start  float64
	Stop   float64
}

// Graph is a short-lived set of voices rendered as one sound effect.
type Graph struct {
	Voices []*Voice
}

// Add appends a voice and returns it.
func (g *Graph) Add(v *Voice) *Voice {
	g.Voices = append(g.Voices, v)
	return v
}

// Duration is the time the last voice stops.
func (g *Graph) Duration() float64 {
	d := 0.0
	for _, v := range g.Voices {
		d = math.Max(d, v.Stop)
	}
	return d
}

// Render mixes the graph into mono samples at sampleRate, scaled by master and
// clipped to [-1, 1].
func Render(g *Graph, sampleRate int, master float64) []float32 {
	n := int(math.Ceil(g.Duration() * float64(sampleRate)))
	out := make([]float32, n)
	dt := 1 / float64(sampleRate)

	for _, v := range g.Voices {
		for i := 0; i < n; i++ {
			t := float64(i) * dt
			if t < v.Start || t >= v.Stop {
				continue
			}
			s := v.Source.Next(t, dt)
			if v.Filter != nil {
				s = v.Filter.Process(s, t, sampleRate)
			}
			if v.Gain != nil {
				s *= v.Gain.ValueAt(t)
			}
			out[i] += float32(s)
		}
	}

	for i := range out {
		s := out[i] * float32(master)
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		out[i] = s
	}
	return out
}
