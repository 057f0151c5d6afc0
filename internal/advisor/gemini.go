package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/autovenda/go-car-market/internal/config"
	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Errors returned by the Gemini client. They never reach an API consumer:
// the advisory service absorbs them into a fallback response.
var (
	ErrNoAPIKey         = errors.New("advisor api key is not configured")
	ErrEmptyCompletion  = errors.New("empty completion in response")
	ErrGenerationFailed = errors.New("generation request failed")
)

// geminiClient calls the Google generative-language REST API
// (models/{model}:generateContent) through a resty client.
type geminiClient struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewGeminiClient constructs a [Client] for the configured model. BaseURL is
// overridable for tests; Timeout bounds a single generation call.
func NewGeminiClient(cfg config.Advisor) Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &geminiClient{
		client: cli,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

// generateContentRequest is the wire shape of a generateContent call.
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateContentResponse carries only the fields this client reads.
type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate submits the prompt to the generateContent endpoint and returns
// the first candidate's text.
func (g *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNoAPIKey
	}

	var result generateContentResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", g.apiKey).
		SetBody(generateContentRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}

// Model reports the configured generative model identifier.
func (g *geminiClient) Model() string {
	return g.model
}
