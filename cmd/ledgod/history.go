package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sigreer/ledgod/internal/db"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [slot-id]",
	Short: "Show recorded indicator transitions",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOut, _ := cmd.Flags().GetBool("json")

		cfg, _ := loadBackend()

		database, err := db.New(cfg.Database)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
			os.Exit(1)
		}
		defer database.Close()

		var events []*db.Event
		if len(args) == 1 {
			events, err = database.SlotEvents(args[0], limit)
		} else {
			events, err = database.RecentEvents(limit)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.Encode(events)
			return
		}

		if len(events) == 0 {
			fmt.Println("No transitions recorded.")
			return
		}

		fmt.Printf("%-20s %-14s %-14s %-14s %s\n", "TIMESTAMP", "AGE", "OLD", "NEW", "SLOT")
		for _, e := range events {
			fmt.Printf("%-20s %-14s %-14s %-14s %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				humanize.Time(e.Timestamp),
				e.OldState, e.NewState, e.SlotID)
		}
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of events to show")
	historyCmd.Flags().Bool("json", false, "Output as JSON")
}
