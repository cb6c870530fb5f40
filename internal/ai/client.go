// Package ai holds the hosted text-generation collaborators: book
// recommendations from the user's taste profile and AI-assisted
// series detection. Both are optional; callers fall back to pure
// heuristics or empty output when the client is disabled or errors.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/hridaya423/bookify/pkg/models"
)

// Recommendation is one suggested book from the generation model
type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason,omitempty"`
}

// Client wraps the chat-completion API
type Client struct {
	client      *openai.Client
	model       string
	maxTokens   int64
	temperature float64
	enabled     bool
}

// NewClient creates a generation client. Disabled (nil-safe) when no
// API key is configured.
func NewClient(apiKey, model string, maxTokens int, temperature float64, enabled bool) *Client {
	if !enabled || apiKey == "" {
		return &Client{enabled: false}
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if maxTokens <= 0 {
		maxTokens = 800
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client:      &client,
		model:       model,
		maxTokens:   int64(maxTokens),
		temperature: temperature,
		enabled:     true,
	}
}

// IsEnabled returns whether the client can make requests
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// Some hosted models emit chain-of-thought wrapped in think tags
// before the answer; strip it before JSON parsing.
var thinkTagRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// StripReasoningTags removes internal reasoning blocks from model output
func StripReasoningTags(s string) string {
	return strings.TrimSpace(thinkTagRe.ReplaceAllString(s, ""))
}

// Recommend asks the model for count book suggestions based on the
// user's favorite genres and recently finished books.
func (c *Client) Recommend(ctx context.Context, favoriteGenres []string, recentBooks []models.Book, count int) ([]Recommendation, error) {
	if !c.enabled {
		return nil, fmt.Errorf("recommendation client is not enabled")
	}
	if count <= 0 {
		count = 5
	}

	systemPrompt := fmt.Sprintf(`You are a book recommendation assistant. Suggest real, published books matching the reader's taste.

Return ONLY valid JSON of the form:
{"recommendations": [{"title": "...", "author": "...", "reason": "one short sentence"}]}

Suggest exactly %d books. Never suggest a book the reader already finished.`, count)

	var sb strings.Builder
	if len(favoriteGenres) > 0 {
		fmt.Fprintf(&sb, "Favorite genres: %s\n", strings.Join(favoriteGenres, ", "))
	}
	if len(recentBooks) > 0 {
		sb.WriteString("Recently finished:\n")
		for _, b := range recentBooks {
			fmt.Fprintf(&sb, "- %s by %s\n", b.Title, b.Author)
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("No reading history yet; suggest widely loved books across genres.\n")
	}

	content, err := c.complete(ctx, systemPrompt, sb.String())
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse recommendation response: %w", err)
	}

	recs := make([]Recommendation, 0, len(parsed.Recommendations))
	for _, r := range parsed.Recommendations {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Author) == "" {
			continue
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// DetectSeries asks the model whether a title belongs to a series.
// Callers fall back to the pattern heuristic on any error.
func (c *Client) DetectSeries(ctx context.Context, title string) (models.SeriesSignal, error) {
	if !c.enabled {
		return models.SeriesSignal{}, fmt.Errorf("series detection client is not enabled")
	}

	systemPrompt := `You identify whether a book title belongs to a series.

Return ONLY valid JSON:
{"series_name": "name or empty string", "order": 1.5, "confidence": 0.9}

Omit "order" when the volume number is unknown. Confidence is 0..1.`

	content, err := c.complete(ctx, systemPrompt, fmt.Sprintf("Book title: %s", title))
	if err != nil {
		return models.SeriesSignal{}, err
	}

	var signal models.SeriesSignal
	if err := json.Unmarshal([]byte(content), &signal); err != nil {
		return models.SeriesSignal{}, fmt.Errorf("parse series detection response: %w", err)
	}
	return signal, nil
}

func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	jsonObjectFormat := shared.NewResponseFormatJSONObjectParam()

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       shared.ChatModel(c.model),
		Temperature: param.NewOpt(c.temperature),
		MaxTokens:   param.NewOpt(c.maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &jsonObjectFormat,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", models.ErrUpstream)
	}

	return StripReasoningTags(completion.Choices[0].Message.Content), nil
}
