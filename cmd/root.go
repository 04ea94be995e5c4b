package cmd

import (
	"os"

	"github.com/encodeous/dvsim/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvsim",
	Short: "Distance Vector routing simulator",
	Long: `dvsim simulates the Distance Vector routing algorithm over a fixed set of
labeled routers: it converges distance and routing tables round by round,
applies a batch of topology updates, and re-converges from the existing table
state. Plain distance-vector behaviour is reproduced faithfully, including
count-to-infinity on link removal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "simulator config (yaml)")
}

func loadSimConfig() (state.SimCfg, error) {
	cfg := state.DefaultSimCfg()
	if configPath == "" {
		return cfg, nil
	}
	file, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return cfg, err
	}
	return cfg, state.SimConfigValidator(&cfg)
}
