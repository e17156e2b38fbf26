package audio

import (
	"sync"
	"sync/atomic"

	"github.com/simukka/pop-bubbles/common"
)

// Sink receives sound events.
type Sink interface {
	Emit(Event)
}

// Queue decouples event emission from synthesis. Emit never blocks: when the
// queue is full the event is dropped.
type Queue struct {
	sink    Sink
	events  chan Event
	quit    chan struct{}
	wg      sync.WaitGroup
	closed  atomic.Bool
	dropped atomic.Int64
	once    sync.Once
}

// NewQueue starts a worker that forwards events to sink.
func NewQueue(sink Sink, depth int) *Queue {
	if depth <= 0 {
		depth = AudioConfig.QueueDepth
	}
	q := &Queue{
		sink:   sink,
		events: make(chan Event, depth),
		quit:   make(chan struct{}),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

func (q *Queue) run() {
	defer q.wg.Done()
	for {
		select {
		case ev := <-q.events:
			q.sink.Emit(ev)
		case <-q.quit:
			return
		}
	}
}

// Emit enqueues an event.
func (q *Queue) Emit(ev Event) {
	if q.closed.Load() {
		return
	}
	select {
	case q.events <- ev:
	default:
		q.dropped.Add(1)
		common.Debug("audio queue full, dropping event", "event", ev.Kind)
	}
}

// SetMuted forwards to the sink when it supports muting.
func (q *Queue) SetMuted(muted bool) {
	if m, ok := q.sink.(interface{ SetMuted(bool) }); ok {
		m.SetMuted(muted)
	}
}

// Dropped returns the number of events discarded because the queue was full.
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// Close stops the worker. Pending events are discarded.
func (q *Queue) Close() {
	q.once.Do(func() {
		q.closed.Store(true)
		close(q.quit)
		q.wg.Wait()
	})
}
