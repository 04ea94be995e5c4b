package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/protocol"
	"github.com/spf13/cobra"
)

var scenarioPath string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation scenario",
	Long: `Reads a scenario (router labels up to START, "src dest cost" triples up to
UPDATE, update triples up to END) from a file or standard input and writes
the per-round distance tables and converged routing tables to standard
output.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSimConfig()
		if err != nil {
			fatal(err)
		}

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

		level := slog.LevelInfo
		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			level = slog.LevelDebug
		}

		if err := core.Start(cfg, scenario, os.Stdout, level); err != nil {
			fatal(err)
		}
	},
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err.Error())
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&scenarioPath, "file", "f", "", "scenario file (defaults to stdin)")
	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
}
