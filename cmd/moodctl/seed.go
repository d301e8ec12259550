package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodlog/internal/config"
	"github.com/moodlog/internal/mood"
	"github.com/moodlog/internal/service"
	"github.com/moodlog/internal/store"
)

var (
	seedCount int
	seedForce bool
)

var sampleNotes = []string{
	"Morning run, cold shower, very focused afterwards.",
	"",
	"Long review meeting. Fine, nothing special.",
	"Missed a deadline and the rain did not help.",
	"Too many tabs open, too many things due on **Friday**.",
	"Dinner with friends.",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the history with sample moods for local development",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "c", 15, "Number of sample entries")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Seed even if the history already has entries")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, cleanup, err := service.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	added, err := seedHistory(cmd, st, seedCount, seedForce, time.Now())
	if err != nil {
		return err
	}
	if added == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "History already has entries, skipping (use --force to add anyway)")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d sample moods\n", added)
	return nil
}

// seedHistory appends count entries spaced one hour apart and ending at now.
func seedHistory(cmd *cobra.Command, st store.Store, count int, force bool, now time.Time) (int, error) {
	existing, err := st.Load(cmd.Context())
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 && !force {
		return 0, nil
	}

	moods := mood.All()
	for i := 0; i < count; i++ {
		at := now.Add(-time.Duration(count-1-i) * time.Hour)
		entry := mood.NewEntry(moods[i%len(moods)], sampleNotes[i%len(sampleNotes)], at)
		if err := st.Append(cmd.Context(), entry); err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i+1, err)
		}
	}
	return count, nil
}
