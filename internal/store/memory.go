package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is the fallback summary store for environments without a
// MongoDB connection string. Same contract, no durability.
type MemoryStore struct {
	mu        sync.RWMutex
	byEpisode map[string]Summary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byEpisode: make(map[string]Summary)}
}

func (s *MemoryStore) SaveSummary(_ context.Context, in Summary) error {
	if in.EpisodeID == "" {
		return fmt.Errorf("%w: episodeId is required", ErrStorage)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if existing, ok := s.byEpisode[in.EpisodeID]; ok {
		in.CreatedAt = existing.CreatedAt
	} else if in.CreatedAt.IsZero() {
		in.CreatedAt = now
	}
	in.UpdatedAt = now

	s.byEpisode[in.EpisodeID] = in
	return nil
}

func (s *MemoryStore) GetSummary(_ context.Context, episodeID string) (Summary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.byEpisode[episodeID]
	return summary, ok, nil
}

func (s *MemoryStore) GetAllSummaries(_ context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.byEpisode))
	for _, summary := range s.byEpisode {
		out = append(out, summary)
	}
	return out, nil
}
