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
	"time"
)

// Phase is the lifecycle state of an `Engine`.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Wall clock layouts used for the informational fields of a `Lap`.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Lap is one recorded interval of measured time.
// Laps are values and never change once appended to a `Ledger`.
//
// Date, StartTime and RecordTime are calendar strings kept for
// display and export only. Duration math never reads them.
type Lap struct {
	Index            int
	Date             string
	IntervalMillis   int64
	CumulativeMillis int64
	StartTime        string
	RecordTime       string
	RecordUnixMillis int64
	Category         string
	Detail           string
}

//go:generate mockgen -destination=../mocks/mock_observer.go -package=mocks lapwatch/core Observer

// Observer receives engine notifications.
// Callbacks are invoked on the goroutine that caused the change
// (the ticker goroutine for `OnElapsedTick`) after the engine lock
// has been released. An `OnElapsedTick` callback must not call
// `Pause` or `Reset` synchronously.
type Observer interface {
	OnPhaseChanged(Phase)
	OnElapsedTick(ms int64)
	OnLedgerChanged(laps []Lap)
}

// ObserverFuncs adapts plain functions to `Observer`.
// Nil members are skipped.
type ObserverFuncs struct {
	PhaseChanged  func(Phase)
	ElapsedTick   func(ms int64)
	LedgerChanged func(laps []Lap)
}

func (o ObserverFuncs) OnPhaseChanged(p Phase) {
	if o.PhaseChanged != nil {
		o.PhaseChanged(p)
	}
}

func (o ObserverFuncs) OnElapsedTick(ms int64) {
	if o.ElapsedTick != nil {
		o.ElapsedTick(ms)
	}
}

func (o ObserverFuncs) OnLedgerChanged(laps []Lap) {
	if o.LedgerChanged != nil {
		o.LedgerChanged(laps)
	}
}

// Config of common knobs.
type Config struct {
	// TickInterval is the display refresh period. Zero disables the ticker.
	TickInterval time.Duration
	// AutoResume restarts the timer right after a lap is recorded.
	// It is applied by the session, never by the engine.
	AutoResume       bool
	Categories       []string
	StatePath        string
	RetryCount       int
	RetryDelay       time.Duration
	EnableVerboseLog bool
}

// DefaultTickInterval matches the historical 10ms display refresh.
const DefaultTickInterval = 10 * time.Millisecond
