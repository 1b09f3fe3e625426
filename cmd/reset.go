package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero the timer and clear all laps",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetConfig()
		if err != nil {
			return err
		}
		s, err := openSession(config, 0)
		if err != nil {
			return err
		}
		if err := s.Reset(); err != nil {
			s.Engine().Close()
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Timer reset")
		return s.Close()
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
