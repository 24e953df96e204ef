package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewsPageUnauthenticated(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/news/world", "", false)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var view domain.GuardView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, domain.GuardUnauthenticated, view.Status)
	assert.Equal(t, "Authentication Required", view.Title)
	require.Len(t, view.Actions, 2)
	assert.Equal(t, "/auth/signin?callbackUrl=%2Fnews%2Fworld", view.Actions[0].Href)
	assert.Equal(t, "/", view.Actions[1].Href)
}

func TestNewsPageAuthenticated(t *testing.T) {
	ts := newTestServer()
	ts.signIn(&domain.SessionPayload{User: domain.SessionUser{ID: "u1"}})

	w := ts.do(http.MethodGet, "/news/technology", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"authenticated","content":{"section":"technology"}}`, w.Body.String())

	w = ts.do(http.MethodGet, "/news", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"authenticated","content":{"section":"general"}}`, w.Body.String())
}

func TestSavedPage(t *testing.T) {
	ts := newTestServer()
	session := &domain.SessionPayload{User: domain.SessionUser{Email: "a@example.com"}}
	ts.signIn(session)
	ts.bookmarks.On("ListBookmarks", mock.Anything, domain.IdentityClues{Session: session}).
		Return([]domain.Bookmark{{ID: "b1", Title: "T"}}, nil).Once()

	w := ts.do(http.MethodGet, "/saved", "", true)

	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		Status  domain.GuardStatus `json:"status"`
		Content struct {
			Bookmarks []domain.Bookmark `json:"bookmarks"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, domain.GuardAuthenticated, view.Status)
	require.Len(t, view.Content.Bookmarks, 1)
	assert.Equal(t, "b1", view.Content.Bookmarks[0].ID)
}

func TestSavedPageStoreError(t *testing.T) {
	ts := newTestServer()
	ts.signIn(&domain.SessionPayload{User: domain.SessionUser{ID: "u1"}})
	ts.bookmarks.On("ListBookmarks", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewTransientStoreError("Failed to fetch bookmarks", assert.AnError)).Once()

	w := ts.do(http.MethodGet, "/saved", "", true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Failed to fetch bookmarks"}`, w.Body.String())
}
