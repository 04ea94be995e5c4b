package cmd

import (
	"fmt"
	"os"

	"github.com/encodeous/dvsim/protocol"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse and validate a scenario without running it",
	Run: func(cmd *cobra.Command, args []string) {
		in := os.Stdin
		if scenarioPath != "" {
			f, err := os.Open(scenarioPath)
			if err != nil {
				fatal(err)
			}
			defer f.Close()
			in = f
		}

		scenario, err := protocol.ParseScenario(in)
		if err != nil {
			fatal(err)
		}
		if _, err := scenario.BuildTopology(); err != nil {
			fatal(err)
		}
		fmt.Printf("scenario ok: %d routers, %d links, %d updates\n",
			len(scenario.Nodes), len(scenario.Links), len(scenario.Updates))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&scenarioPath, "file", "f", "", "scenario file (defaults to stdin)")
}
