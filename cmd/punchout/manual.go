package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sporadisk/punchout/estimator"
	"github.com/sporadisk/punchout/format"
	"github.com/sporadisk/punchout/history"
	"github.com/sporadisk/punchout/schedule"
)

var (
	manualLogin string
	manualHours string
	manualBreak string
	manualSave  bool
)

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Estimate the logout time from a manually entered login time",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		// Malformed or empty values fall back to the configured
		// defaults; schedule.Manual applies the built-in 6h/0m floor.
		workHours := format.ParseHours(manualHours, conf.DefaultWorkHours)
		breakMinutes := format.ParseBreakMinutes(manualBreak, conf.DefaultBreakMinutes)

		res, ok := schedule.Manual(schedule.ManualInput{
			LoginClock:   manualLogin,
			WorkHours:    workHours,
			BreakMinutes: breakMinutes,
		}, time.Now())
		if !ok {
			return fmt.Errorf("a login time is required: --login HH:MM")
		}

		est := &estimator.Estimator{Conf: conf}
		err = est.LoadSummaryOutput()
		if err != nil {
			return err
		}

		err = est.SummaryOutput.OutputResult(res, nil)
		if err != nil {
			return err
		}

		if manualSave {
			store, err := openHistoryStore(conf)
			if err != nil {
				return err
			}
			defer store.Close()

			saved, err := store.Save(context.Background(), history.FromResult(res))
			if err != nil {
				return err
			}
			fmt.Printf("Saved as %s\n", saved.ID)
		}

		return nil
	},
}

func init() {
	manualCmd.Flags().StringVar(&manualLogin, "login", "", "login time of day, HH:MM (required)")
	manualCmd.Flags().StringVar(&manualHours, "hours", "", "required work hours (default from config, else 6)")
	manualCmd.Flags().StringVar(&manualBreak, "break", "", "fixed break allowance in minutes (default from config, else 0)")
	manualCmd.Flags().BoolVar(&manualSave, "save", false, "append the result to the history store")
}
