package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/podcast-digest/internal/app"
	"github.com/example/podcast-digest/internal/catalog"
	"github.com/example/podcast-digest/internal/platform/api"
)

type episodesResponse struct {
	Episodes []catalog.Episode `json:"episodes"`
	Source   string            `json:"source"`
}

type episodeResponse struct {
	Episode catalog.Episode `json:"episode"`
}

// ListEpisodes handles GET /episodes. source names the configured catalog
// variant so clients need not guess from id conventions.
func ListEpisodes(a *app.App, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		episodes, err := a.ListEpisodes(r.Context())
		if err != nil {
			writeAppError(w, err)
			return
		}
		if episodes == nil {
			episodes = []catalog.Episode{}
		}
		api.WriteJSON(w, http.StatusOK, episodesResponse{Episodes: episodes, Source: source})
	}
}

// GetEpisode handles GET /episodes/{episode_id}.
func GetEpisode(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "episode_id"))
		if id == "" {
			api.BadRequest(w, "Episode id is required", "")
			return
		}

		episode, err := a.GetEpisode(r.Context(), id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, episodeResponse{Episode: episode})
	}
}
