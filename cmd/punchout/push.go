package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporadisk/punchout/estimator"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push saved estimates to the configured timesheet service",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		if conf.Exporter == nil {
			return fmt.Errorf("no exporter configured: add an exporter section to the config file")
		}

		exporter, err := estimator.LoadExporter(conf.Exporter)
		if err != nil {
			return fmt.Errorf("estimator.LoadExporter: %w", err)
		}

		store, err := openHistoryStore(conf)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(context.Background())
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("Nothing to push.")
			return nil
		}

		err = exporter.Push(context.Background(), entries)
		if err != nil {
			return fmt.Errorf("exporter.Push: %w", err)
		}

		fmt.Printf("Pushed %d entries.\n", len(entries))
		return nil
	},
}
