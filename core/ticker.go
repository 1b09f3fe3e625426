package core

import (
	"time"
)

// Ticker runs fn every interval on its own goroutine until stopped.
// It is the display refresh loop of a running engine.
type Ticker struct {
	interval      time.Duration
	fn            func()
	stopCh        chan struct{}
	awaiter       *Awaiter
	awaitNotifier *AwaitNotifier
}

func NewTicker(interval time.Duration, fn func()) *Ticker {
	awaiter, awaitNotifier := NewAwaiter()
	return &Ticker{
		interval:      interval,
		fn:            fn,
		stopCh:        make(chan struct{}),
		awaiter:       awaiter,
		awaitNotifier: awaitNotifier,
	}
}

// Start launches the loop.
func (t *Ticker) Start() {
	go t.run()
}

// Stop asks the loop to exit. It does not wait; use `Awaiter`
// for that. Stop must be called at most once.
func (t *Ticker) Stop() {
	close(t.stopCh)
}

func (t *Ticker) Awaiter() *Awaiter {
	return t.awaiter
}

func (t *Ticker) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			t.awaitNotifier.Notify(nil)
			return
		case <-ticker.C:
			// A stop that raced with this tick wins.
			select {
			case <-t.stopCh:
				t.awaitNotifier.Notify(nil)
				return
			default:
			}
			t.fn()
		}
	}
}
