package main

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodlog/internal/mood"
	"github.com/moodlog/internal/store/memory"
)

func TestSeedHistory(t *testing.T) {
	st := memory.NewStore()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	now := time.Date(2025, 4, 1, 20, 0, 0, 0, time.Local)

	added, err := seedHistory(cmd, st, 7, false, now)
	if err != nil {
		t.Fatalf("seedHistory returned error: %v", err)
	}
	if added != 7 || st.Len() != 7 {
		t.Fatalf("expected 7 entries, added=%d stored=%d", added, st.Len())
	}

	history, _ := st.Load(context.Background())
	if history[0].Mood != string(mood.Amazing) || history[5].Mood != string(mood.Amazing) {
		t.Fatalf("expected moods to cycle, got %q and %q", history[0].Mood, history[5].Mood)
	}
	if history[6].Timestamp != "2025-04-01 20:00:00" || history[0].Timestamp != "2025-04-01 14:00:00" {
		t.Fatalf("unexpected timestamps %q .. %q", history[0].Timestamp, history[6].Timestamp)
	}

	added, err = seedHistory(cmd, st, 3, false, now)
	if err != nil || added != 0 || st.Len() != 7 {
		t.Fatalf("expected seeding to skip non-empty history, added=%d stored=%d err=%v", added, st.Len(), err)
	}

	added, _ = seedHistory(cmd, st, 3, true, now)
	if added != 3 || st.Len() != 10 {
		t.Fatalf("expected force to append, added=%d stored=%d", added, st.Len())
	}
}
