package core

import (
	"sync"
	"time"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventPhaseChange  EventType = "phase_change"
	EventElapsedTick  EventType = "elapsed_tick"
	EventLedgerChange EventType = "ledger_change"
)

// Event is the channel form of an `Observer` callback.
type Event struct {
	Type          EventType
	Phase         Phase
	ElapsedMillis int64
	Laps          []Lap
	At            time.Time
}

// Subscribe registers a new observer channel. Sends never block: an
// event is dropped when the buffer is full. The channel is closed by
// `Engine.Close`.
func (e *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	o := &channelObserver{ch: make(chan Event, buffer)}
	e.mu.Lock()
	e.observers = append(e.observers, o)
	e.subscriptions = append(e.subscriptions, o)
	e.mu.Unlock()
	return o.ch
}

type channelObserver struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

func (o *channelObserver) OnPhaseChanged(p Phase) {
	o.emit(Event{Type: EventPhaseChange, Phase: p, At: time.Now()})
}

func (o *channelObserver) OnElapsedTick(ms int64) {
	o.emit(Event{Type: EventElapsedTick, Phase: PhaseRunning, ElapsedMillis: ms, At: time.Now()})
}

func (o *channelObserver) OnLedgerChanged(laps []Lap) {
	o.emit(Event{Type: EventLedgerChange, Laps: laps, At: time.Now()})
}

func (o *channelObserver) emit(event Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	select {
	case o.ch <- event:
	default:
	}
}

func (o *channelObserver) close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	close(o.ch)
}
