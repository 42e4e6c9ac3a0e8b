// Package openai implements the suggestion oracle against an
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/AsthaPitambarwale/music-mood-dj/log"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// Config holds oracle connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the chat completion endpoint and defensively parses the
// reply into suggestions. A reply that cannot be parsed yields zero
// suggestions, not an error; only transport-level failures are errors.
type Client struct {
	config Config
	http   *resty.Client
}

// NewClient creates an oracle client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &Client{config: cfg, http: client}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Suggest asks the model for tracks fitting the mood. Candidates are
// serialized into the prompt so the model cannot reference anything
// outside the provided set, although it still can and does hallucinate.
func (c *Client) Suggest(ctx context.Context, mood string, candidates model.Tracks) ([]model.Suggestion, error) {
	payload := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "user", Content: buildPrompt(mood, candidates)},
		},
	}

	var parsed chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&parsed).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("call suggestion oracle: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("suggestion oracle returned %s", resp.Status())
	}
	if len(parsed.Choices) == 0 {
		log.Warn(ctx, "Oracle reply had no choices", "mood", mood)
		return []model.Suggestion{}, nil
	}

	return parseSuggestions(ctx, parsed.Choices[0].Message.Content), nil
}

// buildPrompt enumerates the candidates as (id | title | artist) lines.
func buildPrompt(mood string, candidates model.Tracks) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest 3-6 tracks for the mood %q from the available tracks below.\n", mood)
	b.WriteString("Available tracks (id | title | artist):\n")
	for _, t := range candidates {
		fmt.Fprintf(&b, "%s | %s | %s\n", t.ID, t.Title, t.Artist)
	}
	b.WriteString(`Reply with a JSON array only, one object per track: [{"trackId": "...", "title": "...", "weight": 0.8}]. Weights are between 0 and 1.`)
	return b.String()
}

// parseSuggestions extracts the first valid JSON array from the reply and
// unmarshals it. Anything unusable yields an empty slice.
func parseSuggestions(ctx context.Context, content string) []model.Suggestion {
	raw, ok := extractJSONArray(content)
	if !ok {
		log.Warn(ctx, "Oracle reply contained no JSON array", "length", len(content))
		return []model.Suggestion{}
	}
	var suggestions []model.Suggestion
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		log.Warn(ctx, "Oracle reply array did not parse", err)
		return []model.Suggestion{}
	}
	return suggestions
}

// extractJSONArray returns the first syntactically valid JSON array
// substring of s. The scan honors string literals and escapes so brackets
// inside titles do not break it.
func extractJSONArray(s string) (string, bool) {
	for start := 0; start < len(s); start++ {
		if s[start] != '[' {
			continue
		}
		depth := 0
		inStr := false
		escaped := false
		for i := start; i < len(s); i++ {
			ch := s[i]
			if inStr {
				switch {
				case escaped:
					escaped = false
				case ch == '\\':
					escaped = true
				case ch == '"':
					inStr = false
				}
				continue
			}
			switch ch {
			case '"':
				inStr = true
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					candidate := s[start : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate, true
					}
					i = len(s) // malformed, try the next '['
				}
			}
		}
	}
	return "", false
}
