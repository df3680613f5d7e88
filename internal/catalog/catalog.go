package catalog

import (
	"context"
	"errors"
	"time"
)

// Episode is one podcast episode as sourced from the catalog provider.
// It is read-only within this system; nothing here is persisted.
type Episode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Publisher   string    `json:"publisher"`
	Thumbnail   string    `json:"thumbnail"`
	AudioURL    string    `json:"audioUrl,omitempty"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	Duration    int       `json:"duration"`
	PublishedAt time.Time `json:"publishedAt"`
}

var (
	// ErrNotFound reports that no episode with the requested id exists upstream.
	ErrNotFound = errors.New("episode not found")

	// ErrUpstream reports a definitive catalog failure after retries exhausted.
	ErrUpstream = errors.New("catalog upstream failure")
)

// Provider is the port for fetching episode metadata.
type Provider interface {
	FetchEpisodes(ctx context.Context) ([]Episode, error)
	FetchEpisodeByID(ctx context.Context, id string) (Episode, error)
}
