package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/example/podcast-digest/internal/catalog"
	"github.com/example/podcast-digest/internal/store"
)

var testEpisode = catalog.Episode{
	ID:          "ep-1",
	Title:       "Cloud Topic",
	Publisher:   "P",
	Description: "A long enough description about cloud infrastructure and cost control strategies.",
}

type fakeProvider struct {
	episodes []catalog.Episode
	err      error
}

func (f *fakeProvider) FetchEpisodes(context.Context) ([]catalog.Episode, error) {
	return f.episodes, f.err
}

func (f *fakeProvider) FetchEpisodeByID(_ context.Context, id string) (catalog.Episode, error) {
	if f.err != nil {
		return catalog.Episode{}, f.err
	}
	for _, e := range f.episodes {
		if e.ID == id {
			return e, nil
		}
	}
	return catalog.Episode{}, catalog.ErrNotFound
}

type countingSummarizer struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
	delay time.Duration
}

func (c *countingSummarizer) SummarizeContent(ctx context.Context, _ string) (string, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.delay):
		}
	}
	return c.text, c.err
}

func (c *countingSummarizer) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type failingStore struct{}

func (failingStore) SaveSummary(context.Context, store.Summary) error {
	return store.ErrStorage
}

func (failingStore) GetSummary(context.Context, string) (store.Summary, bool, error) {
	return store.Summary{}, false, store.ErrStorage
}

func (failingStore) GetAllSummaries(context.Context) ([]store.Summary, error) {
	return nil, store.ErrStorage
}

func TestGenerateSummary_IsIdempotent(t *testing.T) {
	summarizer := &countingSummarizer{text: "a digest"}
	a := New(&fakeProvider{}, summarizer, store.NewMemoryStore(), nil)
	ctx := context.Background()

	first, err := a.GenerateSummary(ctx, testEpisode)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if first.EpisodeID != "ep-1" || first.Summary != "a digest" {
		t.Fatalf("unexpected summary %+v", first)
	}

	second, err := a.GenerateSummary(ctx, testEpisode)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same summary id, got %q vs %q", second.ID, first.ID)
	}
	if second.Summary != first.Summary || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("existing summary was modified: %+v vs %+v", second, first)
	}
	if summarizer.count() != 1 {
		t.Fatalf("expected one summarizer call, got %d", summarizer.count())
	}
}

func TestGenerateSummary_ConcurrentSameEpisode(t *testing.T) {
	summarizer := &countingSummarizer{text: "a digest", delay: 50 * time.Millisecond}
	a := New(&fakeProvider{}, summarizer, store.NewMemoryStore(), nil)
	ctx := context.Background()

	const callers = 10
	results := make([]store.Summary, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = a.GenerateSummary(ctx, testEpisode)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if results[i].ID != results[0].ID {
			t.Fatalf("callers got different summaries: %q vs %q", results[i].ID, results[0].ID)
		}
	}
	if summarizer.count() != 1 {
		t.Fatalf("expected a single shared generation, got %d", summarizer.count())
	}

	all, _ := a.ListSummaries(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one persisted summary, got %d", len(all))
	}
}

func TestGenerateSummary_FailurePersistsNothing(t *testing.T) {
	summarizer := &countingSummarizer{err: errors.New("model down")}
	st := store.NewMemoryStore()
	a := New(&fakeProvider{}, summarizer, st, nil)

	_, err := a.GenerateSummary(context.Background(), testEpisode)
	if !errors.Is(err, ErrSummarization) {
		t.Fatalf("expected ErrSummarization, got %v", err)
	}

	all, _ := st.GetAllSummaries(context.Background())
	if len(all) != 0 {
		t.Fatalf("expected nothing persisted on failure, got %d records", len(all))
	}
}

func TestGenerateSummary_StoreFailure(t *testing.T) {
	summarizer := &countingSummarizer{text: "a digest"}
	a := New(&fakeProvider{}, summarizer, failingStore{}, nil)

	_, err := a.GenerateSummary(context.Background(), testEpisode)
	if !errors.Is(err, ErrSummarization) {
		t.Fatalf("expected ErrSummarization, got %v", err)
	}
}

func TestListEpisodes_WrapsProviderErrors(t *testing.T) {
	a := New(&fakeProvider{err: errors.New("connection refused")}, &countingSummarizer{}, store.NewMemoryStore(), nil)

	_, err := a.ListEpisodes(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestGetEpisode_NotFoundPassesThrough(t *testing.T) {
	a := New(&fakeProvider{}, &countingSummarizer{}, store.NewMemoryStore(), nil)

	_, err := a.GetEpisode(context.Background(), "missing")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected catalog.ErrNotFound, got %v", err)
	}
}

func TestListSummaries_WrapsStoreErrors(t *testing.T) {
	a := New(&fakeProvider{}, &countingSummarizer{}, failingStore{}, nil)

	_, err := a.ListSummaries(context.Background())
	if !errors.Is(err, ErrDatabase) {
		t.Fatalf("expected ErrDatabase, got %v", err)
	}

	_, _, err = a.GetSummary(context.Background(), "ep-1")
	if !errors.Is(err, ErrDatabase) {
		t.Fatalf("expected ErrDatabase, got %v", err)
	}
}

func TestBuildContent(t *testing.T) {
	content := buildContent(testEpisode)
	for _, want := range []string{"Title: Cloud Topic", "Publisher: P", "Description: "} {
		if !strings.Contains(content, want) {
			t.Fatalf("content missing %q: %q", want, content)
		}
	}
}
