package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the recorded laps to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetConfig()
		if err != nil {
			return err
		}
		s, err := openSession(config, 0)
		if err != nil {
			return err
		}
		defer s.Engine().Close()

		if err := s.Export(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d laps to %s\n", s.Status().Laps, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
