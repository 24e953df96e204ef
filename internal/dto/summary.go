package dto

// SummarizeRequest is the body of POST /api/summarize.
type SummarizeRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"maxTokens"`
}

// SummarizeResponse carries the generated markdown summary.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// ErrorResponse is the `{error}` body used by the summary relay.
type ErrorResponse struct {
	Error string `json:"error"`
}
