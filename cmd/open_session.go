package cmd

import (
	"time"

	"lapwatch/core"
	"lapwatch/persistence"
	"lapwatch/session"
)

// openSession recovers the persisted session at config.StatePath.
// One-shot commands pass a zero tick interval so no ticker runs.
func openSession(config *core.Config, tickInterval time.Duration) (*session.Session, error) {
	store := persistence.OpenFileStore(config.StatePath)
	bridge := persistence.NewBridge(store, core.NewRetryPolicy(config.RetryCount, config.RetryDelay))

	engineConfig := *config
	engineConfig.TickInterval = tickInterval
	engine := core.NewEngine(core.NewSystemClock(), engineConfig)

	s := session.New(engine, bridge, config, time.Now)
	if err := s.Open(); err != nil {
		return nil, err
	}
	return s, nil
}
