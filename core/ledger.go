package core

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Ledger is the ordered list of laps recorded by an `Engine`.
// It is append-only except for `Clear` and `ReplaceAll`, which swap
// the whole sequence and start a new epoch.
//
// The ledger shares the engine lock.
type Ledger struct {
	engine *Engine
	laps   []Lap
	// lastCumulative is maintained independently of the engine's
	// elapsed time so a clamped interval cannot rewrite history.
	lastCumulative int64
	epoch          string
	logFields      log.Fields
}

func newLedger(e *Engine) *Ledger {
	return &Ledger{
		engine:    e,
		epoch:     uuid.NewString(),
		logFields: log.Fields{"module": "ledger"},
	}
}

// RecordLap pauses the running timer and appends a lap covering the
// time since the previous lap boundary. The timer is left paused.
//
// If the raw interval is negative it is clamped to 0 and the lap is
// recorded anyway; the returned error is then a `*NegativeIntervalError`
// alongside the valid lap.
func (l *Ledger) RecordLap(category, detail string, nowWallClock, startWallClock time.Time) (Lap, error) {
	e := l.engine
	e.mu.Lock()
	if e.phase != PhaseRunning {
		e.mu.Unlock()
		return Lap{}, ErrNotStarted
	}

	stopped := e.pauseLocked()
	elapsed := e.committed
	elapsedMillis := elapsed.Milliseconds()
	boundaryMillis := e.lastLapBoundary.Milliseconds()

	var anomaly *NegativeIntervalError
	interval := elapsedMillis - boundaryMillis
	if interval < 0 {
		anomaly = &NegativeIntervalError{
			Index:          len(l.laps) + 1,
			RawMillis:      interval,
			ElapsedMillis:  elapsedMillis,
			BoundaryMillis: boundaryMillis,
		}
		interval = 0
	}

	lap := Lap{
		Index:            len(l.laps) + 1,
		Date:             nowWallClock.Format(DateLayout),
		IntervalMillis:   interval,
		CumulativeMillis: l.lastCumulative + interval,
		StartTime:        startWallClock.Format(TimestampLayout),
		RecordTime:       nowWallClock.Format(TimestampLayout),
		RecordUnixMillis: nowWallClock.UnixNano() / int64(time.Millisecond),
		Category:         category,
		Detail:           detail,
	}
	l.laps = append(l.laps, lap)
	l.lastCumulative = lap.CumulativeMillis
	e.lastLapBoundary = elapsed

	laps := l.copyLocked()
	observers := e.observersLocked()
	e.mu.Unlock()

	waitForTicker(stopped)
	fields := log.Fields{
		"index":      lap.Index,
		"interval":   FormatDuration(lap.IntervalMillis),
		"cumulative": FormatDuration(lap.CumulativeMillis),
		"category":   lap.Category,
	}
	if anomaly != nil {
		log.WithFields(l.logFields).WithFields(fields).WithField("err", anomaly).Warn("negative lap interval clamped")
	} else {
		log.WithFields(l.logFields).WithFields(fields).Info("lap recorded")
	}
	notifyPhase(observers, PhasePaused)
	notifyLedger(observers, laps)

	if anomaly != nil {
		return lap, anomaly
	}
	return lap, nil
}

// Clear empties the ledger and resets the lap boundary.
// Measured time and phase are not touched.
func (l *Ledger) Clear() {
	e := l.engine
	e.mu.Lock()
	l.clearLocked()
	observers := e.observersLocked()
	e.mu.Unlock()

	notifyLedger(observers, nil)
}

// ReplaceAll swaps in laps as the new ledger. The largest cumulative
// value among them becomes both the lap boundary and the engine's
// committed time, and the timer is left paused at that point.
func (l *Ledger) ReplaceAll(laps []Lap) {
	e := l.engine
	e.mu.Lock()
	var stopped *Ticker
	if e.phase == PhaseRunning {
		stopped = e.pauseLocked()
	}

	resume := MaxCumulativeMillis(laps)
	if resume > MaxDurationMillis {
		log.WithFields(l.logFields).WithField("cumulative", resume).Warn("cumulative time too large, clamped")
		resume = MaxDurationMillis
	}
	l.laps = slices.Clone(laps)
	l.lastCumulative = resume
	l.epoch = uuid.NewString()
	e.committed = MillisToDuration(resume)
	e.lastLapBoundary = e.committed
	e.runStart = 0
	e.phase = PhasePaused

	copied := l.copyLocked()
	observers := e.observersLocked()
	e.mu.Unlock()

	waitForTicker(stopped)
	log.WithFields(l.logFields).WithFields(log.Fields{
		"laps":   len(copied),
		"resume": FormatDuration(resume),
	}).Info("ledger replaced")
	notifyPhase(observers, PhasePaused)
	notifyLedger(observers, copied)
}

// Restore reloads persisted laps without touching the engine's
// measured time. It is used before `Engine.RecoverFromPersisted`.
// An empty epoch gets a fresh identifier.
func (l *Ledger) Restore(laps []Lap, epoch string) {
	e := l.engine
	e.mu.Lock()
	l.laps = slices.Clone(laps)
	l.lastCumulative = MaxCumulativeMillis(laps)
	if epoch == "" {
		epoch = uuid.NewString()
	}
	l.epoch = epoch
	copied := l.copyLocked()
	observers := e.observersLocked()
	e.mu.Unlock()

	notifyLedger(observers, copied)
}

// Laps returns a copy of the recorded laps.
func (l *Ledger) Laps() []Lap {
	l.engine.mu.Lock()
	defer l.engine.mu.Unlock()
	return l.copyLocked()
}

func (l *Ledger) Len() int {
	l.engine.mu.Lock()
	defer l.engine.mu.Unlock()
	return len(l.laps)
}

func (l *Ledger) LastCumulative() int64 {
	l.engine.mu.Lock()
	defer l.engine.mu.Unlock()
	return l.lastCumulative
}

// Epoch identifies the current ledger lifetime.
func (l *Ledger) Epoch() string {
	l.engine.mu.Lock()
	defer l.engine.mu.Unlock()
	return l.epoch
}

func (l *Ledger) clearLocked() {
	l.laps = nil
	l.lastCumulative = 0
	l.epoch = uuid.NewString()
	l.engine.lastLapBoundary = 0
}

func (l *Ledger) copyLocked() []Lap {
	return slices.Clone(l.laps)
}

// MaxCumulativeMillis returns the largest cumulative value in laps,
// or 0 for an empty slice.
func MaxCumulativeMillis(laps []Lap) int64 {
	var max int64
	for _, lap := range laps {
		if lap.CumulativeMillis > max {
			max = lap.CumulativeMillis
		}
	}
	return max
}
