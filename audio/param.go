package audio

import (
	"math"
	"sort"
)

type automationKind int

const (
	setValue automationKind = iota
	linearRamp
	exponentialRamp
)

type automationEvent struct {
	kind  automationKind
	value float64
	time  float64
}

// Param is an automatable value following the Web Audio AudioParam timeline
// rules: a value holds until the next event, ramps interpolate from the
// previous event's value and time to their own.
type Param struct {
	defaultValue float64
	events       []automationEvent
}

// NewParam creates a parameter with a default value used before the first event.
func NewParam(value float64) *Param {
	return &Param{defaultValue: value}
}

func (p *Param) insert(e automationEvent) *Param {
	i := sort.Search(len(p.events), func(i int) bool { return p.events[i].time > e.time })
	p.events = append(p.events, automationEvent{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = e
	return p
}

// SetValueAtTime jumps to value at time t.
func (p *Param) SetValueAtTime(value, t float64) *Param {
	return p.insert(automationEvent{kind: setValue, value: value, time: t})
}

// LinearRampToValueAtTime ramps linearly from the previous event to value at time t.
func (p *Param) LinearRampToValueAtTime(value, t float64) *Param {
	return p.insert(automationEvent{kind: linearRamp, value: value, time: t})
}

// ExponentialRampToValueAtTime ramps exponentially from the previous event to value at time t.
// A ramp whose endpoints are zero or of opposite sign holds the previous value.
func (p *Param) ExponentialRampToValueAtTime(value, t float64) *Param {
	return p.insert(automationEvent{kind: exponentialRamp, value: value, time: t})
}

// EndTime returns the time of the last scheduled event.
func (p *Param) EndTime() float64 {
	if len(p.events) == 0 {
		return 0
	}
	return p.events[len(p.events)-1].time
}

// ValueAt returns the parameter value at time t.
func (p *Param) ValueAt(t float64) float64 {
	prevT, prevV := 0.0, p.defaultValue
	for _, e := range p.events {
		if t < e.time {
			if e.kind == setValue || e.time <= prevT {
				return prevV
			}
			frac := (t - prevT) / (e.time - prevT)
			if frac < 0 {
				return prevV
			}
			if e.kind == linearRamp {
				return prevV + (e.value-prevV)*frac
			}
			if prevV*e.value <= 0 {
				return prevV
			}
			return prevV * math.Pow(e.value/prevV, frac)
		}
		prevT, prevV = e.time, e.value
	}
	return prevV
}
