package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/example/podcast-digest/internal/app"
	"github.com/example/podcast-digest/internal/catalog"
	"github.com/example/podcast-digest/internal/platform/api"
)

type summarizeRequest struct {
	Episode *catalog.Episode `json:"episode"`
}

// Summarize handles POST /summarize: get-or-create the summary for the
// posted episode. Requests without an episode id are rejected before any
// provider is touched.
func Summarize(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summarizeRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "Episode data is required", "invalid JSON body: "+err.Error())
			return
		}
		if req.Episode == nil || strings.TrimSpace(req.Episode.ID) == "" {
			api.BadRequest(w, "Episode data is required", "episode with a non-empty id is required")
			return
		}

		summary, err := a.GenerateSummary(r.Context(), *req.Episode)
		if err != nil {
			writeAppError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, summaryResponse{Summary: summary})
	}
}
