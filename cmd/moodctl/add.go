package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodlog/internal/mood"
	"github.com/moodlog/internal/service"
)

var addNote string

var addCmd = &cobra.Command{
	Use:   "add <mood>",
	Short: "Record a mood",
	Long:  "Record a mood. Valid moods: " + strings.Join(moodNames(), ", "),
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addNote, "note", "n", "", "Optional note")
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openMoodService()
	if err != nil {
		return err
	}
	defer cleanup()

	entry, err := svc.Record(cmd.Context(), service.MoodInput{Mood: args[0], Note: addNote})
	if err != nil {
		if errors.Is(err, service.ErrMoodInvalid) {
			return fmt.Errorf("unknown mood %q (valid: %s)", args[0], strings.Join(moodNames(), ", "))
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s %s at %s\n", entry.Emoji, entry.Mood, entry.Timestamp)
	return nil
}

func moodNames() []string {
	moods := mood.All()
	names := make([]string, 0, len(moods))
	for _, m := range moods {
		names = append(names, m.String())
	}
	return names
}
