package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"lapwatch/core"
	"lapwatch/session"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// promptRefreshInterval throttles prompt redraws driven by engine ticks.
const promptRefreshInterval = 100 * time.Millisecond

// REPL is the interactive control loop of `lapwatch run`. Every
// session mutation happens on the REPL goroutine.
type REPL struct {
	session       *session.Session
	rl            *readline.Instance
	out           io.Writer
	awaiter       *core.Awaiter
	awaitNotifier *core.AwaitNotifier
	stopOnce      sync.Once
	logFields     log.Fields
}

func NewREPL(s *session.Session) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(s.Status().Phase, s.Status().Elapsed.Milliseconds()),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, errors.Wrap(err, "create readline")
	}
	r := newREPL(s, rl.Stdout())
	r.rl = rl
	return r, nil
}

func newREPL(s *session.Session, out io.Writer) *REPL {
	awaiter, awaitNotifier := core.NewAwaiter()
	return &REPL{
		session:       s,
		out:           out,
		awaiter:       awaiter,
		awaitNotifier: awaitNotifier,
		logFields:     log.Fields{"module": "repl"},
	}
}

func (r *REPL) Awaiter() *core.Awaiter {
	return r.awaiter
}

// Start launches the read loop and the prompt refresher.
func (r *REPL) Start() {
	go r.refreshPrompt(r.session.Engine().Subscribe(16))
	go r.run()
}

// Stop unblocks a pending read so the loop exits.
func (r *REPL) Stop() {
	r.stopOnce.Do(func() {
		r.rl.Close()
	})
}

func (r *REPL) run() {
	defer r.Stop()
	r.printHelp()

	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				fmt.Fprintln(r.out, "Type 'exit' to quit.")
			}
			continue
		}
		if err == io.EOF {
			r.awaitNotifier.Notify(nil)
			return
		}
		if err != nil {
			r.awaitNotifier.Notify(errors.WithStack(err))
			return
		}

		if r.dispatch(line) {
			r.awaitNotifier.Notify(nil)
			return
		}
	}
}

// refreshPrompt redraws the prompt from engine events until the engine
// closes the channel.
func (r *REPL) refreshPrompt(events <-chan core.Event) {
	var last time.Time
	for e := range events {
		var p string
		switch e.Type {
		case core.EventElapsedTick:
			if e.At.Sub(last) < promptRefreshInterval {
				continue
			}
			last = e.At
			p = prompt(core.PhaseRunning, e.ElapsedMillis)
		case core.EventPhaseChange:
			p = prompt(e.Phase, r.session.Engine().Elapsed().Milliseconds())
		default:
			continue
		}
		r.rl.SetPrompt(p)
		r.rl.Refresh()
	}
}

func prompt(phase core.Phase, elapsedMillis int64) string {
	return fmt.Sprintf("lapwatch [%s %s]> ", core.FormatDuration(elapsedMillis), phase)
}

// dispatch runs one command line and reports whether the loop should
// exit.
func (r *REPL) dispatch(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		r.printHelp()

	case "start", "s":
		r.report(r.session.Start())

	case "pause", "p":
		r.report(r.session.Pause())

	case "toggle", "t":
		phase, err := r.session.Toggle()
		if err != nil {
			r.report(err)
			return false
		}
		fmt.Fprintf(r.out, "Timer %s.\n", phase)

	case "lap", "l":
		r.cmdLap(args)

	case "reset":
		r.report(r.session.Reset())

	case "status":
		printStatus(r.out, r.session.Status())

	case "laps", "ls":
		printLaps(r.out, r.session.Engine().Ledger().Laps())

	case "export":
		if len(args) != 1 {
			fmt.Fprintln(r.out, "Usage: export <file>")
			return false
		}
		if err := r.session.Export(args[0]); err != nil {
			r.report(err)
			return false
		}
		fmt.Fprintf(r.out, "Exported to %s.\n", args[0])

	case "import":
		if len(args) != 1 {
			fmt.Fprintln(r.out, "Usage: import <file>")
			return false
		}
		r.cmdImport(args[0])

	case "night":
		night, err := r.session.ToggleNight()
		if err != nil {
			r.report(err)
			return false
		}
		fmt.Fprintf(r.out, "Night mode %s.\n", onOff(night))

	case "exit", "quit", "q":
		fmt.Fprintln(r.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(r.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (r *REPL) cmdLap(args []string) {
	category := ""
	if len(args) > 0 {
		category = args[0]
	}
	detail := ""
	if len(args) > 1 {
		detail = strings.Join(args[1:], " ")
	}

	lap, err := r.session.Lap(category, detail)
	if err != nil && !errors.Is(err, core.ErrNegativeInterval) {
		r.report(err)
		return
	}
	fmt.Fprintf(r.out, "Lap %d: %s (total %s)\n", lap.Index,
		core.FormatDuration(lap.IntervalMillis), core.FormatDuration(lap.CumulativeMillis))
	if err != nil {
		fmt.Fprintf(r.out, "Warning: %v\n", err)
	}
}

func (r *REPL) cmdImport(path string) {
	result, err := r.session.Import(path)
	if err != nil {
		r.report(err)
		return
	}
	fmt.Fprintf(r.out, "Imported %d laps, timer paused at %s.\n",
		len(result.Laps), core.FormatDuration(result.MaxCumulativeMillis))
	for _, w := range result.Warnings {
		fmt.Fprintf(r.out, "Warning: %v\n", w)
	}
}

func (r *REPL) report(err error) {
	if err != nil {
		log.WithFields(r.logFields).WithError(err).Debug("command failed")
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	st := r.session.Status()
	fmt.Fprintf(r.out, "Timer %s at %s.\n", st.Phase, core.FormatDuration(st.Elapsed.Milliseconds()))
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, `
Commands:
  start                       Start or resume the timer
  pause                       Pause the timer
  toggle                      Start if paused, pause if running
  lap [category] [detail...]  Record a lap (pauses the timer)
  reset                       Zero the timer and clear all laps
  status                      Show the timer state
  laps                        List recorded laps
  export <file>               Write laps to a CSV file
  import <file>               Replace laps with a CSV file
  night                       Toggle night mode
  help                        Show this help
  exit                        Save and quit`)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
