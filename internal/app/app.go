// Package app composes the catalog provider, summarizer and summary store
// behind the boundary layer's operations, normalizing provider errors into
// the small external-facing set the handlers map to HTTP statuses.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/example/podcast-digest/internal/catalog"
	"github.com/example/podcast-digest/internal/store"
	"github.com/example/podcast-digest/internal/summarize"
)

var (
	// ErrNetwork wraps catalog provider failures.
	ErrNetwork = errors.New("network error")

	// ErrSummarization wraps any failure of the generate-summary workflow.
	ErrSummarization = errors.New("summarization failed")

	// ErrDatabase wraps summary store failures on read paths.
	ErrDatabase = errors.New("database error")
)

// App is the orchestrator. Which variant backs each port is decided once,
// at construction, and never re-evaluated per call.
type App struct {
	catalog    catalog.Provider
	summarizer summarize.Summarizer
	store      store.SummaryStore
	log        *zap.Logger

	// inflight coalesces concurrent generate calls for the same episode
	// so the model is invoked at most once per id at a time.
	inflight singleflight.Group
}

func New(p catalog.Provider, s summarize.Summarizer, st store.SummaryStore, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{catalog: p, summarizer: s, store: st, log: log}
}

func (a *App) ListEpisodes(ctx context.Context) ([]catalog.Episode, error) {
	episodes, err := a.catalog.FetchEpisodes(ctx)
	if err != nil {
		a.log.Error("fetch episodes", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	return episodes, nil
}

// GetEpisode looks up one episode upstream. ErrNotFound passes through so
// the boundary can answer 404.
func (a *App) GetEpisode(ctx context.Context, id string) (catalog.Episode, error) {
	episode, err := a.catalog.FetchEpisodeByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return catalog.Episode{}, err
		}
		a.log.Error("fetch episode", zap.String("episode_id", id), zap.Error(err))
		return catalog.Episode{}, fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	return episode, nil
}

func (a *App) GetSummary(ctx context.Context, episodeID string) (store.Summary, bool, error) {
	summary, ok, err := a.store.GetSummary(ctx, episodeID)
	if err != nil {
		a.log.Error("get summary", zap.String("episode_id", episodeID), zap.Error(err))
		return store.Summary{}, false, fmt.Errorf("%w: %s", ErrDatabase, err)
	}
	return summary, ok, nil
}

func (a *App) ListSummaries(ctx context.Context) ([]store.Summary, error) {
	summaries, err := a.store.GetAllSummaries(ctx)
	if err != nil {
		a.log.Error("list summaries", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrDatabase, err)
	}
	return summaries, nil
}

// GenerateSummary returns the stored summary for the episode if one
// exists, otherwise generates, persists and returns a fresh one. The call
// is idempotent: an existing summary is returned unchanged, never
// regenerated. Concurrent calls for the same episode id share a single
// generation; the store's upsert reconciles cross-process races.
func (a *App) GenerateSummary(ctx context.Context, episode catalog.Episode) (store.Summary, error) {
	v, err, _ := a.inflight.Do(episode.ID, func() (any, error) {
		return a.generateSummary(ctx, episode)
	})
	if err != nil {
		return store.Summary{}, err
	}
	return v.(store.Summary), nil
}

func (a *App) generateSummary(ctx context.Context, episode catalog.Episode) (store.Summary, error) {
	existing, ok, err := a.store.GetSummary(ctx, episode.ID)
	if err != nil {
		a.log.Error("summary lookup", zap.String("episode_id", episode.ID), zap.Error(err))
		return store.Summary{}, fmt.Errorf("%w: %s", ErrSummarization, err)
	}
	if ok {
		return existing, nil
	}

	text, err := a.summarizer.SummarizeContent(ctx, buildContent(episode))
	if err != nil {
		a.log.Error("summarize content", zap.String("episode_id", episode.ID), zap.Error(err))
		return store.Summary{}, fmt.Errorf("%w: %s", ErrSummarization, err)
	}

	now := time.Now().UTC()
	summary := store.Summary{
		ID:        uuid.NewString(),
		EpisodeID: episode.ID,
		Summary:   text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.store.SaveSummary(ctx, summary); err != nil {
		a.log.Error("save summary", zap.String("episode_id", episode.ID), zap.Error(err))
		return store.Summary{}, fmt.Errorf("%w: %s", ErrSummarization, err)
	}

	a.log.Info("summary generated", zap.String("episode_id", episode.ID), zap.String("summary_id", summary.ID))
	return summary, nil
}

// buildContent assembles the fixed-shape content block handed to the
// summarizer.
func buildContent(episode catalog.Episode) string {
	return strings.Join([]string{
		"Title: " + episode.Title,
		"Publisher: " + episode.Publisher,
		"Description: " + episode.Description,
	}, "\n\n")
}
