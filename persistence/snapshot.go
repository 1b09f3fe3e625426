package persistence

import (
	"time"

	"lapwatch/core"
)

// SnapshotVersion is the snapshot layout written by this build.
const SnapshotVersion = 1

// Snapshot is everything needed to resume a session after a restart.
type Snapshot struct {
	Version int64
	Running bool
	// CommittedElapsed includes the in-flight segment when Running.
	CommittedElapsed time.Duration
	LastLapBoundary  time.Duration
	LapIndex         int
	NightMode        bool
	Epoch            string
	// LapStart is the wall clock the current lap started at. Zero when
	// unknown.
	LapStart time.Time
	Laps     []core.Lap
}

// Pristine is the state of a fresh install.
func Pristine() Snapshot {
	return Snapshot{Version: SnapshotVersion}
}

// Capture takes a consistent snapshot of engine.
func Capture(engine *core.Engine, nightMode bool, lapStart time.Time) Snapshot {
	cp := engine.Checkpoint()
	return Snapshot{
		Version:          SnapshotVersion,
		Running:          cp.Running,
		CommittedElapsed: cp.Elapsed,
		LastLapBoundary:  cp.LastLapBoundary,
		LapIndex:         len(cp.Laps),
		NightMode:        nightMode,
		Epoch:            cp.Epoch,
		LapStart:         lapStart,
		Laps:             cp.Laps,
	}
}

// Apply loads s into a freshly created engine. The ledger is restored
// first so the recovered phase accounts for existing laps.
func Apply(engine *core.Engine, s Snapshot) error {
	engine.Ledger().Restore(s.Laps, s.Epoch)
	return engine.RecoverFromPersisted(s.Running, s.CommittedElapsed, s.LastLapBoundary)
}

func unixMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano() / int64(time.Millisecond)
}

func fromUnixMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}
