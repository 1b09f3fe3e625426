package persistence

import (
	"time"

	"lapwatch/core"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Bridge maps snapshots onto a `KeyValueStore`.
type Bridge struct {
	store       KeyValueStore
	retryPolicy *core.RetryPolicy
	logFields   log.Fields
}

// NewBridge creates a bridge over store. A nil retryPolicy commits
// exactly once.
func NewBridge(store KeyValueStore, retryPolicy *core.RetryPolicy) *Bridge {
	if retryPolicy == nil {
		retryPolicy = core.NewRetryPolicy(0, 0)
	}
	return &Bridge{
		store:       store,
		retryPolicy: retryPolicy,
		logFields:   log.Fields{"module": "persistence_bridge"},
	}
}

// Save writes every key of s and commits them together.
func (b *Bridge) Save(s Snapshot) error {
	laps, err := EncodeLaps(s.Laps)
	if err != nil {
		return err
	}

	b.store.PutLong(KeySnapshotVersion, SnapshotVersion)
	b.store.PutBool(KeyRunning, s.Running)
	b.store.PutLong(KeyCommittedElapsed, s.CommittedElapsed.Milliseconds())
	b.store.PutLong(KeyLastLapBoundary, s.LastLapBoundary.Milliseconds())
	b.store.PutLong(KeyLapIndex, int64(len(s.Laps)))
	b.store.PutBool(KeyNightMode, s.NightMode)
	b.store.PutString(KeyEpoch, s.Epoch)
	b.store.PutLong(KeyLapStartUnixMillis, unixMillis(s.LapStart))
	b.store.PutString(KeyLapRecords, laps)

	err = b.retryPolicy.Execute(b.store.Commit, "commit snapshot %s", s.Epoch)
	if err != nil {
		return errors.Wrap(err, "persist snapshot")
	}
	log.WithFields(b.logFields).WithFields(log.Fields{
		"running": s.Running,
		"elapsed": core.FormatDuration(s.CommittedElapsed.Milliseconds()),
		"laps":    len(s.Laps),
	}).Debug("snapshot saved")
	return nil
}

// Load reads the stored snapshot. It never fails: anything unusable is
// replaced by its pristine value and logged.
func (b *Bridge) Load() Snapshot {
	version := b.store.GetLong(KeySnapshotVersion, 0)
	if version > SnapshotVersion {
		log.WithFields(b.logFields).WithFields(log.Fields{
			"stored":    version,
			"supported": SnapshotVersion,
		}).Warn("snapshot written by a newer version, starting fresh")
		return Pristine()
	}

	s := Snapshot{
		Version:          SnapshotVersion,
		Running:          b.store.GetBool(KeyRunning, false),
		CommittedElapsed: b.loadDuration(KeyCommittedElapsed),
		LastLapBoundary:  b.loadDuration(KeyLastLapBoundary),
		NightMode:        b.store.GetBool(KeyNightMode, false),
		Epoch:            b.store.GetString(KeyEpoch, ""),
		LapStart:         fromUnixMillis(b.store.GetLong(KeyLapStartUnixMillis, 0)),
	}

	laps, err := DecodeLaps(b.store.GetString(KeyLapRecords, ""))
	if err != nil {
		log.WithFields(b.logFields).WithError(err).Warn("stored laps are corrupt, starting with an empty ledger")
		laps = nil
	}
	s.Laps = laps
	s.LapIndex = len(laps)

	if stored := b.store.GetLong(KeyLapIndex, int64(len(laps))); stored != int64(len(laps)) {
		log.WithFields(b.logFields).WithFields(log.Fields{
			"stored": stored,
			"laps":   len(laps),
		}).Warn("stored lap index disagrees with lap list, using lap list")
	}
	return s
}

func (b *Bridge) loadDuration(key string) time.Duration {
	ms := b.store.GetLong(key, 0)
	if ms < 0 {
		log.WithFields(b.logFields).WithFields(log.Fields{"key": key, "value": ms}).Warn("negative stored duration clamped to 0")
		return 0
	}
	if ms > core.MaxDurationMillis {
		log.WithFields(b.logFields).WithFields(log.Fields{"key": key, "value": ms}).Warn("stored duration too large, clamped")
	}
	return core.MillisToDuration(ms)
}
