package services

import "context"

// SummarySvcFacade relays article text to an LLM for summarising.
type SummarySvcFacade interface {
	Summarize(ctx context.Context, prompt string, maxTokens int) (string, error)
}
