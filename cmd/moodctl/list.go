package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/moodlog/internal/mood"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the newest moods, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the full mood history, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "Show the moods that can be recorded",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range mood.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s  %s\n", m.Emoji(), m.String(), m.Label())
		}
	},
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "l", 10, "Number of entries to show")
}

func runRecent(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openMoodService()
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := svc.RecentN(cmd.Context(), recentLimit)
	if err != nil {
		return err
	}
	printEntries(cmd.OutOrStdout(), entries)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openMoodService()
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := svc.History(cmd.Context())
	if err != nil {
		return err
	}
	printEntries(cmd.OutOrStdout(), entries)
	return nil
}

// printEntries prints one line per entry in the given order.
func printEntries(w io.Writer, entries []mood.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No moods tracked yet.")
		return
	}

	for _, e := range entries {
		emoji := e.Emoji
		if emoji == "" {
			emoji = mood.EmojiFor(e.Mood)
		}
		line := fmt.Sprintf("%s  %s  %-8s", e.Timestamp, emoji, e.Mood)
		if e.Note != "" {
			line += "  " + e.Note
		}
		fmt.Fprintln(w, line)
	}
}
