package handlers_test

import (
	"net/http"
	"testing"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSummarizeHandler(t *testing.T) {
	ts := newTestServer()
	ts.summary.On("Summarize", mock.Anything, "article text", 200).Return("# Key Points", nil).Once()

	w := ts.do(http.MethodPost, "/api/summarize", `{"prompt":"article text","maxTokens":200}`, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"summary":"# Key Points"}`, w.Body.String())
}

func TestSummarizeHandlerErrors(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/summarize", `not json`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing prompt in request body"}`, w.Body.String())

	ts.summary.On("Summarize", mock.Anything, "", 0).
		Return("", apperrors.NewBadRequestError("Missing prompt in request body")).Once()
	w = ts.do(http.MethodPost, "/api/summarize", `{}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ts.summary.On("Summarize", mock.Anything, "text", 0).
		Return("", apperrors.NewAppError(http.StatusServiceUnavailable, "Failed to generate summary", assert.AnError)).Once()
	w = ts.do(http.MethodPost, "/api/summarize", `{"prompt":"text"}`, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Failed to generate summary"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	ts := newTestServer()
	w := ts.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
