package store

import (
	"context"
	"errors"
	"time"
)

// DefaultCollection is the document-store collection holding summaries.
const DefaultCollection = "summaries"

// Summary is one generated episode digest. At most one summary exists per
// episodeId; every write is an upsert keyed on it.
type Summary struct {
	ID        string    `json:"id" bson:"id"`
	EpisodeID string    `json:"episodeId" bson:"episodeId"`
	Summary   string    `json:"summary" bson:"summary"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ErrStorage reports an I/O failure in the backing store. The store never
// retries internally; retries, if any, belong to the caller.
var ErrStorage = errors.New("summary storage failure")

// SummaryStore defines the contract for summary persistence.
type SummaryStore interface {
	// SaveSummary upserts keyed by EpisodeID, refreshing UpdatedAt and
	// preserving the first write's CreatedAt.
	SaveSummary(ctx context.Context, s Summary) error

	// GetSummary reports the summary for an episode, if one exists.
	GetSummary(ctx context.Context, episodeID string) (Summary, bool, error)

	// GetAllSummaries returns every stored summary in unspecified order.
	GetAllSummaries(ctx context.Context) ([]Summary, error)
}
