package session

import (
	"time"

	"lapwatch/codec"
	"lapwatch/core"
	"lapwatch/persistence"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

var ErrNothingToExport = errors.New("no laps to export")

// Status is a read-only summary for display.
type Status struct {
	Phase     core.Phase
	Elapsed   time.Duration
	Laps      int
	LastLap   *core.Lap
	NightMode bool
	Epoch     string
	LapStart  time.Time
}

// Session binds an engine to its persisted state and applies the host
// policies from `core.Config`. It is driven from one goroutine.
type Session struct {
	engine    *core.Engine
	bridge    *persistence.Bridge
	config    *core.Config
	wallClock func() time.Time
	nightMode bool
	lapStart  time.Time
	logFields log.Fields
}

// New creates a session. A nil wallClock reads time.Now.
func New(engine *core.Engine, bridge *persistence.Bridge, config *core.Config, wallClock func() time.Time) *Session {
	if config == nil {
		config = &core.Config{}
	}
	if wallClock == nil {
		wallClock = time.Now
	}
	return &Session{
		engine:    engine,
		bridge:    bridge,
		config:    config,
		wallClock: wallClock,
		logFields: log.Fields{"module": "session"},
	}
}

func (s *Session) Engine() *core.Engine {
	return s.engine
}

// Open restores the persisted state into the engine. It must be called
// once, before any other operation.
func (s *Session) Open() error {
	snapshot := s.bridge.Load()
	if err := persistence.Apply(s.engine, snapshot); err != nil {
		return err
	}
	s.nightMode = snapshot.NightMode
	s.lapStart = snapshot.LapStart
	if s.lapStart.IsZero() && s.engine.Phase() == core.PhaseRunning {
		s.lapStart = s.wallClock()
	}

	log.WithFields(s.logFields).WithFields(log.Fields{
		"phase":   s.engine.Phase().String(),
		"elapsed": core.FormatDuration(s.engine.Elapsed().Milliseconds()),
		"laps":    len(snapshot.Laps),
		"epoch":   snapshot.Epoch,
	}).Info("session opened")
	return nil
}

func (s *Session) Start() error {
	if err := s.engine.Start(); err != nil {
		return err
	}
	s.lapStart = s.wallClock()
	return s.Checkpoint()
}

func (s *Session) Pause() error {
	if err := s.engine.Pause(); err != nil {
		return err
	}
	return s.Checkpoint()
}

// Toggle pauses a running timer and starts it otherwise. It returns the
// resulting phase.
func (s *Session) Toggle() (core.Phase, error) {
	var err error
	if s.engine.Phase() == core.PhaseRunning {
		err = s.Pause()
	} else {
		err = s.Start()
	}
	return s.engine.Phase(), err
}

// Lap records a lap and, when AutoResume is set, restarts the timer.
// A `*core.NegativeIntervalError` is returned together with the
// recorded lap; the lap is kept either way.
func (s *Session) Lap(category, detail string) (core.Lap, error) {
	if len(s.config.Categories) > 0 && !slices.Contains(s.config.Categories, category) {
		log.WithFields(s.logFields).WithFields(log.Fields{
			"category":   category,
			"categories": s.config.Categories,
		}).Warn("category is not configured, recording anyway")
	}

	now := s.wallClock()
	lapStart := s.lapStart
	if lapStart.IsZero() {
		lapStart = now
	}

	lap, err := s.engine.Ledger().RecordLap(category, detail, now, lapStart)
	if err != nil && !errors.Is(err, core.ErrNegativeInterval) {
		return lap, err
	}
	anomaly := err

	if s.config.AutoResume {
		if err := s.engine.Start(); err != nil {
			return lap, err
		}
		s.lapStart = s.wallClock()
	}
	if err := s.Checkpoint(); err != nil {
		return lap, err
	}
	return lap, anomaly
}

func (s *Session) Reset() error {
	s.engine.Reset()
	s.lapStart = time.Time{}
	return s.Checkpoint()
}

// Import replaces the ledger with the laps in the file at path and
// leaves the timer paused at the largest imported cumulative time.
// When the file cannot be read or its header does not match, the
// session is left untouched.
func (s *Session) Import(path string) (*codec.ImportResult, error) {
	result, err := codec.ImportFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "import %s", path)
	}
	s.engine.Ledger().ReplaceAll(result.Laps)
	s.lapStart = time.Time{}
	return result, s.Checkpoint()
}

// Export writes the current ledger to path.
func (s *Session) Export(path string) error {
	laps := s.engine.Ledger().Laps()
	if len(laps) == 0 {
		return ErrNothingToExport
	}
	if err := codec.ExportFile(path, laps); err != nil {
		return errors.Wrapf(err, "export %s", path)
	}
	log.WithFields(s.logFields).WithFields(log.Fields{"path": path, "laps": len(laps)}).Info("laps exported")
	return nil
}

// ToggleNight flips the persisted night mode flag and returns the new
// value.
func (s *Session) ToggleNight() (bool, error) {
	s.nightMode = !s.nightMode
	return s.nightMode, s.Checkpoint()
}

func (s *Session) NightMode() bool {
	return s.nightMode
}

// Checkpoint persists the current state.
func (s *Session) Checkpoint() error {
	return s.bridge.Save(persistence.Capture(s.engine, s.nightMode, s.lapStart))
}

func (s *Session) Status() Status {
	laps := s.engine.Ledger().Laps()
	st := Status{
		Phase:     s.engine.Phase(),
		Elapsed:   s.engine.Elapsed(),
		Laps:      len(laps),
		NightMode: s.nightMode,
		Epoch:     s.engine.Ledger().Epoch(),
		LapStart:  s.lapStart,
	}
	if len(laps) > 0 {
		last := laps[len(laps)-1]
		st.LastLap = &last
	}
	return st
}

// Close stops the engine's background work and writes a final
// checkpoint. A running timer is persisted as running.
func (s *Session) Close() error {
	s.engine.Close()
	return s.Checkpoint()
}
