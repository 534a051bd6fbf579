package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sporadisk/punchout/config"
	"github.com/sporadisk/punchout/history"
)

var confPath string

var rootCmd = &cobra.Command{
	Use:   "punchout",
	Short: "Estimate when you can log out for the day",
	Long: `punchout reads a log of clock-in/clock-out timestamps (or a manually
entered login time) and works out how much you have worked, how long
your breaks were, and when you will reach your daily target.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&confPath, "config", "", "path to a config file (default .punchout.yaml)")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(manualCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(pushCmd)
}

func loadConfig() (*config.Config, error) {
	conf, err := config.Load(confPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return conf, nil
}

func openHistoryStore(conf *config.Config) (*history.Store, error) {
	baseDir := ""
	if conf.History != nil {
		baseDir = conf.History.Path
	}

	if baseDir == "" {
		var err error
		baseDir, err = history.DefaultBaseDir()
		if err != nil {
			return nil, err
		}
	}

	return history.Open(baseDir)
}
