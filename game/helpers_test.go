package game

import "github.com/simukka/pop-bubbles/audio"

// fixedRand always returns the same value.
type fixedRand struct {
	v float64
}

func (r fixedRand) Random() float64 { return r.v }

type recordingSink struct {
	events []audio.Event
	muted  bool
}

func (r *recordingSink) Emit(ev audio.Event) { r.events = append(r.events, ev) }
func (r *recordingSink) SetMuted(m bool)     { r.muted = m }

func (r *recordingSink) kinds() []audio.EventKind {
	kinds := make([]audio.EventKind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

type memStore struct {
	score int
	saves int
	err   error
}

func (m *memStore) Load() (int, error) { return m.score, m.err }

func (m *memStore) Save(score int) error {
	if m.err != nil {
		return m.err
	}
	m.score = score
	m.saves++
	return nil
}

// newRunningSession returns a session started on easy at time 0.
func newRunningSession() (*Session, *recordingSink) {
	sink := &recordingSink{}
	s := NewSession(Options{Rand: fixedRand{0.5}, Sound: sink})
	if err := s.StartByName("easy", 0); err != nil {
		panic(err)
	}
	return s, sink
}

func addBubble(s *Session, x, y, r float64) *Bubble {
	b := &Bubble{ID: s.nextBubbleID, X: x, Y: y, Radius: r}
	s.nextBubbleID++
	s.Bubbles = append(s.Bubbles, b)
	return b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
