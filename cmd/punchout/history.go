package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporadisk/punchout/console"
	"github.com/sporadisk/punchout/format"
	"github.com/sporadisk/punchout/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved estimates",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved estimates, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
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
			fmt.Println("No saved estimates.")
			return nil
		}

		fmt.Printf("%-26s  %-10s  %7s  %8s  %s\n", "ID", "DATE", "ACTIVE", "BREAK", "LOGOUT")
		for _, e := range entries {
			fmt.Printf("%-26s  %-10s  %6.1fh  %8s  %s\n",
				e.ID, e.DateLabel, e.ActiveHours, format.Minutes(e.BreakMinutes), e.LogoutLabel)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one saved estimate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openHistoryStore(conf)
		if err != nil {
			return err
		}
		defer store.Close()

		if !console.Confirm(fmt.Sprintf("Delete entry %s?", args[0])) {
			fmt.Println("Aborted.")
			return nil
		}

		err = store.Delete(context.Background(), args[0])
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("no entry with id %s", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Println("Deleted.")
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved estimates",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openHistoryStore(conf)
		if err != nil {
			return err
		}
		defer store.Close()

		if !console.Confirm("Delete all saved estimates?") {
			fmt.Println("Aborted.")
			return nil
		}

		deleted, err := store.Clear(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Deleted %d entries.\n", deleted)
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
