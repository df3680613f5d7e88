package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.SaveSummary(ctx, Summary{EpisodeID: "ep-1", Summary: "first digest"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := s.GetSummary(ctx, "ep-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected summary to exist")
	}
	if got.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set: %+v", got)
	}

	_, ok, err = s.GetSummary(ctx, "ep-missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("expected absent summary")
	}
}

func TestMemoryStore_UpsertKeepsOneRecordPerEpisode(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.SaveSummary(ctx, Summary{EpisodeID: "ep-1", Summary: "v1"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	first, _, _ := s.GetSummary(ctx, "ep-1")

	time.Sleep(5 * time.Millisecond)
	if err := s.SaveSummary(ctx, Summary{EpisodeID: "ep-1", Summary: "v2"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	all, err := s.GetAllSummaries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(all))
	}

	got := all[0]
	if got.Summary != "v2" {
		t.Fatalf("expected latest text, got %q", got.Summary)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("createdAt changed on upsert: %v vs %v", got.CreatedAt, first.CreatedAt)
	}
	if !got.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("updatedAt not refreshed: %v vs %v", got.UpdatedAt, first.UpdatedAt)
	}
}

func TestMemoryStore_RequiresEpisodeID(t *testing.T) {
	s := NewMemoryStore()

	err := s.SaveSummary(context.Background(), Summary{Summary: "orphan"})
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestMemoryStore_ConcurrentUpserts(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SaveSummary(ctx, Summary{EpisodeID: "ep-1", Summary: "racing"})
		}()
	}
	wg.Wait()

	all, err := s.GetAllSummaries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one record after concurrent upserts, got %d", len(all))
	}
}
