package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"golang.org/x/oauth2"
)

const (
	SummaryModel            = "llama3-8b-8192"
	DefaultSummaryMaxTokens = 500
	summaryTemperature      = 0.3

	MsgMissingPrompt        = "Missing prompt in request body"
	MsgSummaryNotConfigured = "GROQ API key not configured"
	MsgSummaryFailed        = "Failed to generate summary"
)

const summarySystemPrompt = `You are a news article summarizer that creates clear, concise, and objective summaries in Markdown format.

Follow these formatting rules exactly:
1. Use "# Key Points" as the main title followed by bullet points (use "-" for bullets)
2. Use "## Context" for the second section with a concise paragraph
3. Use "## Impact" for the third section with a concise paragraph
4. Use proper markdown syntax throughout (bold, italics, etc. where appropriate)
5. Keep the entire summary under 300 words for readability
6. Be factual and avoid opinion or speculation`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type summaryService struct {
	BaseService
	apiURL string
	client *http.Client
}

// NewSummaryService creates the Groq relay. With an empty apiKey every call
// fails with a configuration error.
func NewSummaryService(apiKey, apiURL string) portssvc.SummarySvcFacade {
	s := &summaryService{apiURL: apiURL}
	if apiKey != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey, TokenType: "Bearer"})
		s.client = oauth2.NewClient(context.Background(), src)
	}
	return s
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

func (s *summaryService) Summarize(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if prompt == "" {
		return "", apperrors.NewBadRequestError(MsgMissingPrompt)
	}
	if s.client == nil {
		return "", apperrors.NewInternalServerError(MsgSummaryNotConfigured)
	}
	if maxTokens <= 0 {
		maxTokens = DefaultSummaryMaxTokens
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: SummaryModel,
		Messages: []chatMessage{
			{Role: "system", Content: summarySystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: summaryTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", apperrors.NewAppError(http.StatusInternalServerError, MsgSummaryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewAppError(http.StatusInternalServerError, MsgSummaryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.LogError(ctx, err, "Summary request failed")
		return "", apperrors.NewAppError(http.StatusInternalServerError, MsgSummaryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		upstreamErr := fmt.Errorf("summary upstream returned %s: %s", resp.Status, snippet)
		s.LogError(ctx, upstreamErr, "Summary upstream error", slog.Int("status", resp.StatusCode))
		return "", apperrors.NewAppError(resp.StatusCode, MsgSummaryFailed, upstreamErr)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperrors.NewAppError(http.StatusInternalServerError, MsgSummaryFailed, err)
	}
	if len(out.Choices) == 0 {
		return "", apperrors.NewAppError(http.StatusInternalServerError, MsgSummaryFailed, fmt.Errorf("summary response has no choices"))
	}
	return out.Choices[0].Message.Content, nil
}
