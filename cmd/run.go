/*
Copyright © 2026 Lapwatch Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"lapwatch/core"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive lapwatch session",
	Long: `Recovers the saved timer and opens a prompt to start, pause and
record laps. A timer that was running when the previous process ended
keeps running; the time the process was gone is not counted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetConfig()
		if err != nil {
			return err
		}
		s, err := openSession(config, config.TickInterval)
		if err != nil {
			return err
		}
		return RunCLIInstance(s, config)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("tick-interval", core.DefaultTickInterval, "display refresh interval, 0 disables it")
	runCmd.Flags().Bool("auto-resume", false, "restart the timer right after a lap is recorded")

	viper.BindPFlag("tick-interval", runCmd.Flags().Lookup("tick-interval"))
	viper.BindPFlag("auto-resume", runCmd.Flags().Lookup("auto-resume"))
}
