package cmd

import (
	"fmt"
	"io"

	"lapwatch/core"
	"lapwatch/session"

	"github.com/spf13/cobra"
)

var showLaps bool

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved timer state",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetConfig()
		if err != nil {
			return err
		}
		s, err := openSession(config, 0)
		if err != nil {
			return err
		}
		// Read only: the engine is closed without writing a checkpoint.
		defer s.Engine().Close()

		out := cmd.OutOrStdout()
		printStatus(out, s.Status())
		if showLaps {
			printLaps(out, s.Engine().Ledger().Laps())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVarP(&showLaps, "laps", "l", false, "also list the recorded laps")
}

func printStatus(w io.Writer, st session.Status) {
	fmt.Fprintf(w, "Timer:   %s\n", st.Phase)
	fmt.Fprintf(w, "Elapsed: %s\n", core.FormatDuration(st.Elapsed.Milliseconds()))
	fmt.Fprintf(w, "Laps:    %d\n", st.Laps)
	if st.LastLap != nil {
		fmt.Fprintf(w, "Last:    #%d %s %s (%s)\n", st.LastLap.Index,
			core.FormatDuration(st.LastLap.IntervalMillis), st.LastLap.Category, st.LastLap.RecordTime)
	}
	fmt.Fprintf(w, "Night:   %s\n", onOff(st.NightMode))
}

func printLaps(w io.Writer, laps []core.Lap) {
	if len(laps) == 0 {
		fmt.Fprintln(w, "No laps recorded")
		return
	}
	fmt.Fprintf(w, "%-4s %-12s %-12s %-19s %-12s %s\n", "#", "INTERVAL", "CUMULATIVE", "RECORDED", "CATEGORY", "DETAIL")
	for _, lap := range laps {
		fmt.Fprintf(w, "%-4d %-12s %-12s %-19s %-12s %s\n", lap.Index,
			core.FormatDuration(lap.IntervalMillis), core.FormatDuration(lap.CumulativeMillis),
			lap.RecordTime, lap.Category, lap.Detail)
	}
}
