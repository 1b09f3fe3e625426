package cmd

import (
	"fmt"

	"lapwatch/core"

	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the recorded laps with a CSV file",
	Long: `Replaces every recorded lap with the laps in the file. The timer is
paused at the largest cumulative time found, and the next lap continues
the numbering of the imported ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetConfig()
		if err != nil {
			return err
		}
		s, err := openSession(config, 0)
		if err != nil {
			return err
		}

		result, err := s.Import(args[0])
		if err != nil {
			s.Engine().Close()
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %d laps, timer paused at %s\n",
			len(result.Laps), core.FormatDuration(result.MaxCumulativeMillis))
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "Warning: %v\n", w)
		}
		return s.Close()
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
