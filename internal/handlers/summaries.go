package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/podcast-digest/internal/app"
	"github.com/example/podcast-digest/internal/platform/api"
	"github.com/example/podcast-digest/internal/store"
)

type summariesResponse struct {
	Summaries []store.Summary `json:"summaries"`
}

type summaryResponse struct {
	Summary store.Summary `json:"summary"`
}

// ListSummaries handles GET /summaries.
func ListSummaries(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := a.ListSummaries(r.Context())
		if err != nil {
			writeAppError(w, err)
			return
		}
		if summaries == nil {
			summaries = []store.Summary{}
		}
		api.WriteJSON(w, http.StatusOK, summariesResponse{Summaries: summaries})
	}
}

// GetSummary handles GET /summaries/{episode_id}.
func GetSummary(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		episodeID := strings.TrimSpace(chi.URLParam(r, "episode_id"))
		if episodeID == "" {
			api.BadRequest(w, "Episode id is required", "")
			return
		}

		summary, ok, err := a.GetSummary(r.Context(), episodeID)
		if err != nil {
			writeAppError(w, err)
			return
		}
		if !ok {
			api.NotFound(w, "No summary exists for this episode.", "")
			return
		}
		api.WriteJSON(w, http.StatusOK, summaryResponse{Summary: summary})
	}
}
