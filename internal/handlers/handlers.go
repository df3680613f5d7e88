// Package handlers exposes the orchestrator over HTTP. Each handler maps
// the orchestrator's error set to a fixed status and user-facing message,
// with the raw error string carried in details for diagnostics.
package handlers

import (
	"errors"
	"net/http"

	"github.com/example/podcast-digest/internal/app"
	"github.com/example/podcast-digest/internal/catalog"
	"github.com/example/podcast-digest/internal/platform/api"
)

const (
	msgNetworkError        = "Network error occurred. Please try again."
	msgSummarizationFailed = "Failed to generate summary. Please try again."
	msgDatabaseError       = "Database error occurred."
	msgEpisodeNotFound     = "Episode not found."
)

// Catalog source values reported on /episodes.
const (
	SourceLive    = "live"
	SourceFixture = "fixture"
)

func writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		api.NotFound(w, msgEpisodeNotFound, err.Error())
	case errors.Is(err, app.ErrNetwork):
		api.Internal(w, msgNetworkError, err.Error())
	case errors.Is(err, app.ErrSummarization):
		api.Internal(w, msgSummarizationFailed, err.Error())
	case errors.Is(err, app.ErrDatabase):
		api.Internal(w, msgDatabaseError, err.Error())
	default:
		api.Internal(w, "Internal server error", err.Error())
	}
}
