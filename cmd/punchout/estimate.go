package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sporadisk/punchout/client/logfile"
	"github.com/sporadisk/punchout/config"
	"github.com/sporadisk/punchout/estimator"
	"github.com/sporadisk/punchout/extract"
	"github.com/sporadisk/punchout/format"
)

var (
	estimateWatch bool
	estimateHours string
	estimateSave  bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <file>",
	Short: "Estimate the logout time from a timestamp log file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		applyEstimateFlags(conf)

		if estimateWatch {
			return watchFile(conf, args[0])
		}
		return estimateOnce(conf, args[0])
	},
}

func init() {
	estimateCmd.Flags().BoolVarP(&estimateWatch, "watch", "w", false, "keep watching the file and re-estimate on every write")
	estimateCmd.Flags().StringVar(&estimateHours, "hours", "", "required work hours (overrides config, default 6)")
	estimateCmd.Flags().BoolVar(&estimateSave, "save", false, "append each computed result to the history store")
}

func applyEstimateFlags(conf *config.Config) {
	if estimateHours != "" {
		conf.DefaultWorkHours = format.ParseHours(estimateHours, conf.DefaultWorkHours)
	}
	if estimateSave {
		if conf.History == nil {
			conf.History = &config.HistoryConfig{}
		}
		conf.History.AutoSave = true
	}
}

func estimateOnce(conf *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	ex := extract.Extractor{}
	err = ex.Init()
	if err != nil {
		return fmt.Errorf("extractor init: %w", err)
	}
	instants := ex.Extract(string(data))

	est := &estimator.Estimator{Conf: conf}
	err = est.Prepare()
	if err != nil {
		return err
	}

	return est.Receive(instants, ex.Warnings())
}

func watchFile(conf *config.Config, path string) error {
	subscriber, err := logfile.NewSubscriber(path)
	if err != nil {
		return fmt.Errorf("logfile.NewSubscriber: %w", err)
	}

	est := &estimator.Estimator{
		Conf:       conf,
		Subscriber: subscriber,
	}

	err = est.Start()
	if err != nil {
		return fmt.Errorf("estimator.Start: %w", err)
	}
	return nil
}
