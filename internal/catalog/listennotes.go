package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/example/podcast-digest/internal/platform/retry"
)

const recencyWindow = 30 * 24 * time.Hour

// ListenNotesClient fetches episodes from the Listen Notes API.
type ListenNotesClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	Attempts  int
	BaseDelay time.Duration
}

func NewListenNotesClient(apiKey string) *ListenNotesClient {
	return &ListenNotesClient{
		BaseURL:    "https://listen-api.listennotes.com/api/v2",
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Attempts:   retry.DefaultAttempts,
		BaseDelay:  retry.DefaultBaseDelay,
	}
}

// listenNotesEpisode is the provider's native episode shape. Some catalog
// responses carry `image`, others `thumbnail`; the mapper tolerates both.
type listenNotesEpisode struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Publisher      string `json:"publisher"`
	Image          string `json:"image"`
	Thumbnail      string `json:"thumbnail"`
	Audio          string `json:"audio"`
	AudioLengthSec int    `json:"audio_length_sec"`
	PubDateMS      int64  `json:"pub_date_ms"`
	ListenNotesURL string `json:"listennotes_url"`
	Error          string `json:"error"`
}

type episodeListResponse struct {
	Episodes []listenNotesEpisode `json:"episodes"`
	Total    int                  `json:"total"`
	HasNext  bool                 `json:"has_next"`
	Error    string               `json:"error"`
}

// FetchEpisodes issues a single catalog query with a fixed search term and
// filters, mapping the native payload into Episodes.
func (c *ListenNotesClient) FetchEpisodes(ctx context.Context) ([]Episode, error) {
	q := url.Values{}
	q.Set("type", "episodes")
	q.Set("q", "technology")
	q.Set("only_in", "title,description")
	q.Set("language", "English")
	q.Set("safe_mode", "1")
	q.Set("len_min", "10")
	q.Set("len_max", "60")
	q.Set("published_after", strconv.FormatInt(time.Now().Add(-recencyWindow).Unix(), 10))

	var out episodeListResponse
	err := retry.Do(ctx, c.Attempts, c.BaseDelay, func() error {
		out = episodeListResponse{}
		if err := c.getJSON(ctx, c.BaseURL+"/episodes?"+q.Encode(), &out); err != nil {
			return err
		}
		if out.Error != "" {
			return retry.Transient(fmt.Errorf("listennotes: error payload: %s", out.Error))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}

	episodes := make([]Episode, len(out.Episodes))
	for i, e := range out.Episodes {
		episodes[i] = mapEpisode(e)
	}
	return episodes, nil
}

func (c *ListenNotesClient) FetchEpisodeByID(ctx context.Context, id string) (Episode, error) {
	if strings.TrimSpace(id) == "" {
		return Episode{}, ErrNotFound
	}

	var out listenNotesEpisode
	err := retry.Do(ctx, c.Attempts, c.BaseDelay, func() error {
		out = listenNotesEpisode{}
		if err := c.getJSON(ctx, c.BaseURL+"/episodes/"+url.PathEscape(id), &out); err != nil {
			return err
		}
		if out.Error != "" {
			return retry.Transient(fmt.Errorf("listennotes: error payload: %s", out.Error))
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Episode{}, ErrNotFound
		}
		return Episode{}, fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	return mapEpisode(out), nil
}

func (c *ListenNotesClient) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-ListenAPI-Key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return retry.Transient(err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return retry.Transient(err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return retry.Transient(fmt.Errorf("listennotes: status %d body=%q", resp.StatusCode, string(b[:min(len(b), 200)])))
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return retry.Transient(fmt.Errorf("listennotes: decode error: %w", err))
	}
	return nil
}

func mapEpisode(e listenNotesEpisode) Episode {
	thumbnail := e.Image
	if thumbnail == "" {
		thumbnail = e.Thumbnail
	}
	return Episode{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Publisher:   e.Publisher,
		Thumbnail:   thumbnail,
		AudioURL:    e.Audio,
		SourceURL:   e.ListenNotesURL,
		Duration:    e.AudioLengthSec,
		PublishedAt: time.UnixMilli(e.PubDateMS).UTC(),
	}
}
