package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"lapwatch/core"
	"lapwatch/session"

	log "github.com/sirupsen/logrus"
)

// RunCLIInstance drives s from an interactive REPL until the user
// exits or the process is asked to terminate. The session is
// checkpointed on the way out either way.
func RunCLIInstance(s *session.Session, config *core.Config) error {
	if config.EnableVerboseLog {
		log.SetLevel(log.DebugLevel)
	}

	repl, err := NewREPL(s)
	if err != nil {
		s.Close()
		return err
	}

	chanSignal := make(chan os.Signal, 1)
	signal.Notify(chanSignal, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(chanSignal)

	repl.Start()

	select {
	case <-repl.Awaiter().Done():
	case sig := <-chanSignal:
		log.WithFields(log.Fields{"module": "cli", "signal": sig.String()}).Info("signal received, saving state")
		repl.Stop()
	}

	err = repl.Awaiter().Err()
	if closeErr := s.Close(); err == nil {
		err = closeErr
	}
	return err
}
