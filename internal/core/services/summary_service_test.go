package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gsk_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"role": "assistant", "content": "# Key Points\n- one"}}},
		})
	}))
	t.Cleanup(srv.Close)

	svc := services.NewSummaryService("gsk_test", srv.URL)
	summary, err := svc.Summarize(context.Background(), "Article text", 0)

	require.NoError(t, err)
	assert.Equal(t, "# Key Points\n- one", summary)
	assert.Equal(t, services.SummaryModel, got["model"])
	assert.EqualValues(t, services.DefaultSummaryMaxTokens, got["max_tokens"])
	messages := got["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "Article text", messages[1].(map[string]any)["content"])
}

func TestSummarizeErrors(t *testing.T) {
	ctx := context.Background()

	_, err := services.NewSummaryService("gsk_test", "http://unused.test").Summarize(ctx, "", 100)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusFor(err))
	assert.Contains(t, err.Error(), services.MsgMissingPrompt)

	_, err = services.NewSummaryService("", "http://unused.test").Summarize(ctx, "text", 100)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusFor(err))
	assert.Contains(t, err.Error(), services.MsgSummaryNotConfigured)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	t.Cleanup(srv.Close)
	_, err = services.NewSummaryService("gsk_test", srv.URL).Summarize(ctx, "text", 100)
	assert.Equal(t, http.StatusTooManyRequests, apperrors.StatusFor(err))
	assert.Contains(t, err.Error(), services.MsgSummaryFailed)

	down := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	down.Close()
	_, err = services.NewSummaryService("gsk_test", down.URL).Summarize(ctx, "text", 100)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusFor(err))
}
