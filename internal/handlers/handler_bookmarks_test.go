package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/SscSPs/news_digest_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookmarkHandlerTestSuite struct {
	suite.Suite
	ts      *testServer
	session *domain.SessionPayload
}

func (suite *BookmarkHandlerTestSuite) SetupTest() {
	suite.ts = newTestServer()
	suite.session = &domain.SessionPayload{User: domain.SessionUser{ID: "u1", Email: "a@example.com"}}
	suite.ts.signIn(suite.session)
}

func (suite *BookmarkHandlerTestSuite) decode(body []byte) dto.MessageResponse {
	var resp dto.MessageResponse
	suite.Require().NoError(json.Unmarshal(body, &resp))
	return resp
}

func (suite *BookmarkHandlerTestSuite) TestNoSessionIsUnauthorized() {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		w := suite.ts.do(method, "/api/bookmarks", "", false)
		suite.Equal(http.StatusUnauthorized, w.Code, method)
		suite.Equal("Unauthorized", suite.decode(w.Body.Bytes()).Message)
	}
	suite.ts.bookmarks.AssertNotCalled(suite.T(), "ListBookmarks", mock.Anything, mock.Anything)
}

func (suite *BookmarkHandlerTestSuite) TestListBookmarks() {
	suite.ts.bookmarks.On("ListBookmarks", mock.Anything, mock.MatchedBy(func(c domain.IdentityClues) bool {
		return c.Session != nil && c.Session.User.ID == "u1" && c.HeaderUserID == "hdr"
	})).Return([]domain.Bookmark{{ID: "b2", ArticleID: "a2"}, {ID: "b1", ArticleID: "a1"}}, nil).Once()

	w := suite.ts.do(http.MethodGet, "/api/bookmarks", "", true, "X-User-ID", "hdr")

	suite.Equal(http.StatusOK, w.Code)
	var got []domain.Bookmark
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 2)
	suite.Equal("b2", got[0].ID)
	suite.ts.bookmarks.AssertExpectations(suite.T())
}

func (suite *BookmarkHandlerTestSuite) TestListBookmarks_EmptyArray() {
	suite.ts.bookmarks.On("ListBookmarks", mock.Anything, mock.Anything).Return([]domain.Bookmark{}, nil).Once()

	w := suite.ts.do(http.MethodGet, "/api/bookmarks", "", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *BookmarkHandlerTestSuite) TestListBookmarks_Errors() {
	suite.ts.bookmarks.On("ListBookmarks", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("User ID not found", apperrors.ErrIdentityUnresolved)).Once()
	w := suite.ts.do(http.MethodGet, "/api/bookmarks", "", true)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("User ID not found", suite.decode(w.Body.Bytes()).Message)

	suite.ts.bookmarks.On("ListBookmarks", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewTransientStoreError("Failed to fetch bookmarks", assert.AnError)).Once()
	w = suite.ts.do(http.MethodGet, "/api/bookmarks", "", true)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to fetch bookmarks", suite.decode(w.Body.Bytes()).Message)
}

const createBody = `{"article":{"url":"https://news.test/a","title":"A","publishedAt":"2024-03-01","source":{"name":"N"}},"userId":"body-user"}`

func (suite *BookmarkHandlerTestSuite) TestCreateBookmark_Created() {
	suite.ts.bookmarks.On("CreateBookmark", mock.Anything, mock.Anything, mock.MatchedBy(func(req dto.CreateBookmarkRequest) bool {
		return req.Article != nil && req.Article.URL == "https://news.test/a" && req.UserID == "body-user"
	})).Return(&domain.Bookmark{ID: "b1", Category: "general"}, true, nil).Once()

	w := suite.ts.do(http.MethodPost, "/api/bookmarks", createBody, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BookmarkMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Article bookmarked successfully", resp.Message)
	suite.Equal("general", resp.Bookmark.Category)
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmark_AlreadyBookmarked() {
	suite.ts.bookmarks.On("CreateBookmark", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Bookmark{ID: "b0"}, false, nil).Once()

	w := suite.ts.do(http.MethodPost, "/api/bookmarks", createBody, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BookmarkMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Article already bookmarked", resp.Message)
	suite.Equal("b0", resp.Bookmark.ID)
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmark_MalformedBody() {
	w := suite.ts.do(http.MethodPost, "/api/bookmarks", `{"article":`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid article data", suite.decode(w.Body.Bytes()).Message)
	suite.ts.bookmarks.AssertNotCalled(suite.T(), "CreateBookmark", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmark_StoreFailure() {
	suite.ts.bookmarks.On("CreateBookmark", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, false, apperrors.NewTransientStoreError("Failed to bookmark article", assert.AnError)).Once()

	w := suite.ts.do(http.MethodPost, "/api/bookmarks", createBody, true)

	suite.Equal(http.StatusInternalServerError, w.Code)
	resp := suite.decode(w.Body.Bytes())
	suite.Equal("Failed to bookmark article", resp.Message)
	suite.NotEmpty(resp.Error)
	suite.NotContains(resp.Error, assert.AnError.Error())
}

func (suite *BookmarkHandlerTestSuite) TestDeleteBookmark() {
	suite.ts.bookmarks.On("DeleteBookmark", mock.Anything, mock.Anything, "YQ==").Return(nil).Once()

	w := suite.ts.do(http.MethodDelete, "/api/bookmarks?articleId=YQ%3D%3D", "", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Bookmark removed successfully", suite.decode(w.Body.Bytes()).Message)
}

func (suite *BookmarkHandlerTestSuite) TestDeleteBookmark_Errors() {
	suite.ts.bookmarks.On("DeleteBookmark", mock.Anything, mock.Anything, "").
		Return(apperrors.NewValidationError("Article ID is required", nil)).Once()
	w := suite.ts.do(http.MethodDelete, "/api/bookmarks", "", true)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Article ID is required", suite.decode(w.Body.Bytes()).Message)

	suite.ts.bookmarks.On("DeleteBookmark", mock.Anything, mock.Anything, "missing").
		Return(apperrors.NewNotFoundError("Bookmark not found")).Once()
	w = suite.ts.do(http.MethodDelete, "/api/bookmarks?articleId=missing", "", true)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Bookmark not found", suite.decode(w.Body.Bytes()).Message)
}

func TestBookmarkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookmarkHandlerTestSuite))
}
