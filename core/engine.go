/*
Copyright © 2026 Lapwatch Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package core

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Engine measures running time across start/pause cycles.
//
// Elapsed time is split into a committed part, accumulated from
// finished run segments, and an in-flight part measured from the
// monotonic instant the current segment started. Only the in-flight
// part reads the clock, which makes recovery after a process restart
// a rebase of runStart rather than a recomputation from wall time.
//
// Mutations are expected to come from a single control goroutine.
// The mutex exists so the ticker goroutine can read safely.
type Engine struct {
	mu              sync.Mutex
	clock           Clock
	config          Config
	phase           Phase
	committed       time.Duration
	runStart        time.Duration
	lastLapBoundary time.Duration
	// generation changes whenever a run segment begins or ends.
	// Ticks carry the generation they were started with and are
	// dropped when it is stale.
	generation    uint64
	recovered     bool
	ticker        *Ticker
	ledger        *Ledger
	observers     []Observer
	subscriptions []*channelObserver
	logFields     log.Fields
}

// Checkpoint is a consistent view of the engine and its ledger.
// When taken while running, Elapsed includes the in-flight segment.
type Checkpoint struct {
	Running         bool
	Elapsed         time.Duration
	LastLapBoundary time.Duration
	Epoch           string
	Laps            []Lap
}

func NewEngine(clock Clock, config Config) *Engine {
	e := &Engine{
		clock:     clock,
		config:    config,
		phase:     PhaseIdle,
		logFields: log.Fields{"module": "engine"},
	}
	e.ledger = newLedger(e)
	return e
}

// AddObserver registers o for all future notifications.
func (e *Engine) AddObserver(o Observer) {
	e.mu.Lock()
	e.observers = append(e.observers, o)
	e.mu.Unlock()
}

// Ledger returns the lap ledger bound to this engine.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

func (e *Engine) LastLapBoundary() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastLapBoundary
}

// Start begins a run segment. Resuming keeps the committed time.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.phase == PhaseRunning {
		e.mu.Unlock()
		return ErrAlreadyRunning
	}
	e.beginRunLocked()
	committed := e.committed
	observers := e.observersLocked()
	e.mu.Unlock()

	log.WithFields(e.logFields).WithField("elapsed", FormatDuration(committed.Milliseconds())).Debug("timer started")
	notifyPhase(observers, PhaseRunning)
	return nil
}

// Pause ends the current run segment and commits its duration.
func (e *Engine) Pause() error {
	e.mu.Lock()
	if e.phase != PhaseRunning {
		e.mu.Unlock()
		return ErrNotRunning
	}
	stopped := e.pauseLocked()
	committed := e.committed
	observers := e.observersLocked()
	e.mu.Unlock()

	waitForTicker(stopped)
	log.WithFields(e.logFields).WithField("elapsed", FormatDuration(committed.Milliseconds())).Debug("timer paused")
	notifyPhase(observers, PhasePaused)
	return nil
}

// Elapsed returns the total running time since the last reset.
// It never changes engine state.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsedLocked()
}

// Reset pauses a running timer, then zeroes all measured time and
// empties the ledger.
func (e *Engine) Reset() {
	e.mu.Lock()
	var stopped *Ticker
	if e.phase == PhaseRunning {
		stopped = e.pauseLocked()
	}
	e.committed = 0
	e.ledger.clearLocked()
	e.phase = PhaseIdle
	observers := e.observersLocked()
	e.mu.Unlock()

	waitForTicker(stopped)
	log.WithFields(e.logFields).Info("timer reset")
	notifyPhase(observers, PhaseIdle)
	notifyLedger(observers, nil)
}

// RecoverFromPersisted restores the state saved by a previous process.
// It may be called once per engine.
//
// When wasRunning is set the timer resumes from committed with a fresh
// run start. The gap between the checkpoint and this call is never
// credited to the running time.
func (e *Engine) RecoverFromPersisted(wasRunning bool, committed, lastLapBoundary time.Duration) error {
	e.mu.Lock()
	if e.recovered {
		e.mu.Unlock()
		return ErrAlreadyRecovered
	}
	e.recovered = true

	if committed < 0 {
		log.WithFields(e.logFields).WithField("committed", committed).Warn("negative persisted elapsed time clamped to 0")
		committed = 0
	}
	if lastLapBoundary < 0 {
		log.WithFields(e.logFields).WithField("boundary", lastLapBoundary).Warn("negative persisted lap boundary clamped to 0")
		lastLapBoundary = 0
	}

	stopped := e.stopTickerLocked()
	e.committed = committed
	e.lastLapBoundary = lastLapBoundary
	switch {
	case wasRunning:
		e.beginRunLocked()
	case committed > 0 || len(e.ledger.laps) > 0:
		e.runStart = 0
		e.phase = PhasePaused
	default:
		e.runStart = 0
		e.phase = PhaseIdle
	}
	phase := e.phase
	observers := e.observersLocked()
	e.mu.Unlock()

	waitForTicker(stopped)
	log.WithFields(e.logFields).WithFields(log.Fields{
		"phase":    phase.String(),
		"elapsed":  FormatDuration(committed.Milliseconds()),
		"boundary": FormatDuration(lastLapBoundary.Milliseconds()),
	}).Info("engine state recovered")
	notifyPhase(observers, phase)
	return nil
}

// Checkpoint returns a consistent snapshot for persistence.
func (e *Engine) Checkpoint() Checkpoint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Checkpoint{
		Running:         e.phase == PhaseRunning,
		Elapsed:         e.elapsedLocked(),
		LastLapBoundary: e.lastLapBoundary,
		Epoch:           e.ledger.epoch,
		Laps:            e.ledger.copyLocked(),
	}
}

// Close stops the ticker and closes every channel returned by
// `Subscribe`. The phase is left as is so a checkpoint taken
// afterwards still reports a running timer.
func (e *Engine) Close() {
	e.mu.Lock()
	stopped := e.stopTickerLocked()
	subscriptions := e.subscriptions
	e.subscriptions = nil
	e.mu.Unlock()

	waitForTicker(stopped)
	for _, s := range subscriptions {
		s.close()
	}
}

func (e *Engine) beginRunLocked() {
	e.phase = PhaseRunning
	e.runStart = e.clock.Now()
	e.generation++
	if e.config.TickInterval > 0 {
		generation := e.generation
		e.ticker = NewTicker(e.config.TickInterval, func() {
			e.tick(generation)
		})
		e.ticker.Start()
	}
}

// pauseLocked commits the in-flight segment. The returned ticker, if
// any, has been told to stop and should be awaited after unlocking.
func (e *Engine) pauseLocked() *Ticker {
	e.committed += e.sinceRunStartLocked()
	e.runStart = 0
	e.phase = PhasePaused
	return e.stopTickerLocked()
}

func (e *Engine) stopTickerLocked() *Ticker {
	e.generation++
	t := e.ticker
	e.ticker = nil
	if t != nil {
		t.Stop()
	}
	return t
}

func (e *Engine) elapsedLocked() time.Duration {
	if e.phase != PhaseRunning {
		return e.committed
	}
	return e.committed + e.sinceRunStartLocked()
}

func (e *Engine) sinceRunStartLocked() time.Duration {
	d := e.clock.Now() - e.runStart
	if d < 0 {
		log.WithFields(e.logFields).WithField("delta", d).Warn("clock went backwards, segment clamped to 0")
		return 0
	}
	return d
}

func (e *Engine) tick(generation uint64) {
	e.mu.Lock()
	if e.phase != PhaseRunning || generation != e.generation {
		e.mu.Unlock()
		return
	}
	ms := e.elapsedLocked().Milliseconds()
	observers := e.observersLocked()
	e.mu.Unlock()

	for _, o := range observers {
		o.OnElapsedTick(ms)
	}
}

func (e *Engine) observersLocked() []Observer {
	return append([]Observer(nil), e.observers...)
}

func waitForTicker(t *Ticker) {
	if t != nil {
		<-t.Awaiter().Done()
	}
}

func notifyPhase(observers []Observer, p Phase) {
	for _, o := range observers {
		o.OnPhaseChanged(p)
	}
}

func notifyLedger(observers []Observer, laps []Lap) {
	for _, o := range observers {
		o.OnLedgerChanged(laps)
	}
}
