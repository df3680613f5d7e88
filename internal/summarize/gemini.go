package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/example/podcast-digest/internal/platform/retry"
)

// GeminiClient calls the Gemini generateContent endpoint once per attempt,
// wrapped in the shared retry policy.
type GeminiClient struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client

	Attempts  int
	BaseDelay time.Duration
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiClient{
		BaseURL:    "https://generativelanguage.googleapis.com/v1beta",
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Attempts:   retry.DefaultAttempts,
		BaseDelay:  retry.DefaultBaseDelay,
	}
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GeminiClient) SummarizeContent(ctx context.Context, content string) (string, error) {
	sanitized := Sanitize(content)
	if err := checkLength(sanitized); err != nil {
		return "", err
	}
	prompt := buildPrompt(sanitized)

	var text string
	err := retry.Do(ctx, c.Attempts, c.BaseDelay, func() error {
		out, err := c.generate(ctx, prompt)
		if err != nil {
			return err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			// The model occasionally returns blank completions; worth a retry.
			return retry.Transient(ErrEmptyResult)
		}
		text = out
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmptyResult) {
			return "", ErrEmptyResult
		}
		return "", fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	return text, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 1000,
		},
	})
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.BaseURL, "/"), url.PathEscape(c.Model), url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", retry.Transient(err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", retry.Transient(err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", retry.Transient(fmt.Errorf("gemini: status %d body=%q", resp.StatusCode, string(b[:min(len(b), 200)])))
	}

	var out generateResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return "", retry.Transient(fmt.Errorf("gemini: decode error: %w", err))
	}
	if out.Error != nil {
		return "", retry.Transient(fmt.Errorf("gemini: error payload: %d %s", out.Error.Code, out.Error.Message))
	}

	var sb strings.Builder
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
