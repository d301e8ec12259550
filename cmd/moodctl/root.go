package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodlog/internal/config"
	"github.com/moodlog/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "moodctl – record and review moods from the terminal",
	Long: `moodctl works on the same mood history as the web server.
The store backend and file locations come from the same environment variables
(STORE_BACKEND, DATA_FILE, DATABASE_PATH) and an optional .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(moodsCmd)
	rootCmd.AddCommand(seedCmd)
}

// openMoodService loads config and opens the configured store.
func openMoodService() (*service.MoodService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	st, cleanup, err := service.OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return service.NewMoodService(st, cfg.RecentLimit), cleanup, nil
}
