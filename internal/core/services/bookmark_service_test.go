package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/core/services"
	"github.com/SscSPs/news_digest_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testArticleURL = "https://news.test/world/story-1"

// base64 of testArticleURL
const testArticleID = "aHR0cHM6Ly9uZXdzLnRlc3Qvd29ybGQvc3RvcnktMQ=="

type BookmarkServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBookmarkRepository
	metrics  *recordingMetrics
	service  portssvc.BookmarkSvcFacade
}

func (suite *BookmarkServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBookmarkRepository)
	suite.metrics = &recordingMetrics{}
	suite.service = services.NewBookmarkService(suite.mockRepo, services.WithBookmarkMetrics(suite.metrics))
}

func sessionClues(id string) domain.IdentityClues {
	return domain.IdentityClues{Session: &domain.SessionPayload{User: domain.SessionUser{ID: id, Email: "a@example.com"}}}
}

func validCreateRequest() dto.CreateBookmarkRequest {
	return dto.CreateBookmarkRequest{
		Article: &dto.ArticleRequest{
			URL:         testArticleURL,
			Title:       "Story <b>one</b>",
			Description: "Something &amp; more",
			URLToImage:  "https://news.test/img.png",
			PublishedAt: "2024-03-01T10:00:00Z",
			Source:      &dto.ArticleSourceRequest{Name: "News Test"},
		},
	}
}

func appErrorCode(err error) int {
	return apperrors.StatusFor(err)
}

// --- ListBookmarks ---

func (suite *BookmarkServiceTestSuite) TestListBookmarks_Success() {
	ctx := context.Background()
	newer := domain.Bookmark{ID: "b2", UserID: "u1", CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)}
	older := domain.Bookmark{ID: "b1", UserID: "u1", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	suite.mockRepo.On("ListBookmarksByUser", mock.Anything, "u1").Return([]domain.Bookmark{newer, older}, nil).Once()

	bookmarks, err := suite.service.ListBookmarks(ctx, sessionClues("u1"))

	suite.Require().NoError(err)
	suite.Require().Len(bookmarks, 2)
	suite.Equal("b2", bookmarks[0].ID)
	suite.Equal([]string{"list:ok"}, suite.metrics.bookmarks)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookmarkServiceTestSuite) TestListBookmarks_EmptyIsNotNil() {
	suite.mockRepo.On("ListBookmarksByUser", mock.Anything, "u1").Return(nil, nil).Once()

	bookmarks, err := suite.service.ListBookmarks(context.Background(), sessionClues("u1"))

	suite.Require().NoError(err)
	suite.NotNil(bookmarks)
	suite.Empty(bookmarks)
}

func (suite *BookmarkServiceTestSuite) TestListBookmarks_UnresolvedIdentity() {
	_, err := suite.service.ListBookmarks(context.Background(), domain.IdentityClues{Session: &domain.SessionPayload{}})

	suite.ErrorIs(err, apperrors.ErrIdentityUnresolved)
	suite.Equal(http.StatusBadRequest, appErrorCode(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "ListBookmarksByUser", mock.Anything, mock.Anything)
}

func (suite *BookmarkServiceTestSuite) TestListBookmarks_StoreError() {
	suite.mockRepo.On("ListBookmarksByUser", mock.Anything, "u1").Return(nil, assert.AnError).Once()

	_, err := suite.service.ListBookmarks(context.Background(), sessionClues("u1"))

	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Equal(http.StatusInternalServerError, appErrorCode(err))
	suite.Contains(err.Error(), services.MsgFailedToFetch)
}

func (suite *BookmarkServiceTestSuite) TestListBookmarks_EmailFallback() {
	clues := domain.IdentityClues{Session: &domain.SessionPayload{User: domain.SessionUser{Email: "a@example.com"}}}
	suite.mockRepo.On("ListBookmarksByUser", mock.Anything, "a@example.com").Return([]domain.Bookmark{}, nil).Once()

	_, err := suite.service.ListBookmarks(context.Background(), clues)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- CreateBookmark ---

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindBookmark", mock.Anything, "u1", testArticleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateBookmark", mock.Anything, mock.MatchedBy(func(b domain.Bookmark) bool {
		return b.UserID == "u1" &&
			b.ArticleID == testArticleID &&
			b.Category == domain.DefaultBookmarkCategory &&
			b.Title == "Story <b>one</b>" &&
			b.Description == "Something & more" &&
			b.Source.Name == "News Test"
	})).Return(&domain.Bookmark{ID: "b1", UserID: "u1", ArticleID: testArticleID}, nil).Once()

	bookmark, created, err := suite.service.CreateBookmark(ctx, sessionClues("u1"), validCreateRequest())

	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal("b1", bookmark.ID)
	suite.Equal([]string{"create:ok"}, suite.metrics.bookmarks)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_KeepsCategory() {
	req := validCreateRequest()
	req.Category = "technology"
	suite.mockRepo.On("FindBookmark", mock.Anything, "u1", testArticleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateBookmark", mock.Anything, mock.MatchedBy(func(b domain.Bookmark) bool {
		return b.Category == "technology"
	})).Return(&domain.Bookmark{ID: "b1"}, nil).Once()

	_, created, err := suite.service.CreateBookmark(context.Background(), sessionClues("u1"), req)

	suite.Require().NoError(err)
	suite.True(created)
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_ExistingReturned() {
	existing := &domain.Bookmark{ID: "b0", UserID: "u1", ArticleID: testArticleID}
	suite.mockRepo.On("FindBookmark", mock.Anything, "u1", testArticleID).Return(existing, nil).Once()

	bookmark, created, err := suite.service.CreateBookmark(context.Background(), sessionClues("u1"), validCreateRequest())

	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(existing, bookmark)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBookmark", mock.Anything, mock.Anything)
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_LostRaceReturnsWinner() {
	winner := &domain.Bookmark{ID: "bw", UserID: "u1", ArticleID: testArticleID}
	suite.mockRepo.On("FindBookmark", mock.Anything, "u1", testArticleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateBookmark", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindBookmark", mock.Anything, "u1", testArticleID).Return(winner, nil).Once()

	bookmark, created, err := suite.service.CreateBookmark(context.Background(), sessionClues("u1"), validCreateRequest())

	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal("bw", bookmark.ID)
	suite.Equal([]string{"create:duplicate"}, suite.metrics.bookmarks)
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_InvalidArticle() {
	tests := []struct {
		name string
		req  dto.CreateBookmarkRequest
	}{
		{"missing article", dto.CreateBookmarkRequest{}},
		{"missing url", dto.CreateBookmarkRequest{Article: &dto.ArticleRequest{Title: "t", PublishedAt: "p"}}},
		{"missing title", dto.CreateBookmarkRequest{Article: &dto.ArticleRequest{URL: testArticleURL, PublishedAt: "p"}}},
		{"missing publishedAt", dto.CreateBookmarkRequest{Article: &dto.ArticleRequest{URL: testArticleURL, Title: "t"}}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, _, err := suite.service.CreateBookmark(context.Background(), domain.IdentityClues{}, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Contains(err.Error(), services.MsgInvalidArticleData)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindBookmark", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_TitleKeptVerbatim() {
	req := validCreateRequest()
	req.Article.Title = "  Generics <T> in Go "
	req.Article.Description = "<p>Why Vec&lt;String&gt; beats &amp;str</p>"
	suite.mockRepo.On("FindBookmark", mock.Anything, "u1", testArticleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateBookmark", mock.Anything, mock.MatchedBy(func(b domain.Bookmark) bool {
		return b.Title == "Generics <T> in Go" && b.Description == "Why Vec<String> beats &str"
	})).Return(&domain.Bookmark{ID: "b1"}, nil).Once()

	_, created, err := suite.service.CreateBookmark(context.Background(), sessionClues("u1"), req)

	suite.Require().NoError(err)
	suite.True(created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_MarkupOnlyTitleRejected() {
	for _, title := range []string{"<b></b>", "<img src=x onerror=alert(1)>", "   "} {
		req := validCreateRequest()
		req.Article.Title = title

		_, _, err := suite.service.CreateBookmark(context.Background(), sessionClues("u1"), req)

		suite.ErrorIs(err, apperrors.ErrValidation, title)
		suite.Equal(http.StatusBadRequest, appErrorCode(err), title)
		suite.Contains(err.Error(), services.MsgInvalidArticleData, title)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBookmark", mock.Anything, mock.Anything)
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_BodyUserID() {
	req := validCreateRequest()
	req.UserID = "body-user"
	suite.mockRepo.On("FindBookmark", mock.Anything, "body-user", testArticleID).Return(&domain.Bookmark{ID: "b0"}, nil).Once()

	_, _, err := suite.service.CreateBookmark(context.Background(), domain.IdentityClues{}, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_UnresolvedIdentity() {
	_, _, err := suite.service.CreateBookmark(context.Background(), domain.IdentityClues{}, validCreateRequest())

	suite.ErrorIs(err, apperrors.ErrIdentityUnresolved)
	suite.Contains(err.Error(), services.MsgUserIDNotFound)
}

func (suite *BookmarkServiceTestSuite) TestCreateBookmark_StoreError() {
	suite.mockRepo.On("FindBookmark", mock.Anything, "u1", testArticleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateBookmark", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	_, _, err := suite.service.CreateBookmark(context.Background(), sessionClues("u1"), validCreateRequest())

	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Contains(err.Error(), services.MsgFailedToBookmark)
	suite.Equal([]string{"create:error"}, suite.metrics.bookmarks)
}

// --- DeleteBookmark ---

func (suite *BookmarkServiceTestSuite) TestDeleteBookmark_Success() {
	suite.mockRepo.On("DeleteBookmark", mock.Anything, "u1", testArticleID).Return(nil).Once()

	err := suite.service.DeleteBookmark(context.Background(), sessionClues("u1"), testArticleID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookmarkServiceTestSuite) TestDeleteBookmark_NotFound() {
	suite.mockRepo.On("DeleteBookmark", mock.Anything, "u1", testArticleID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBookmark(context.Background(), sessionClues("u1"), testArticleID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(http.StatusNotFound, appErrorCode(err))
}

func (suite *BookmarkServiceTestSuite) TestDeleteBookmark_MissingArticleID() {
	err := suite.service.DeleteBookmark(context.Background(), sessionClues("u1"), "")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), services.MsgArticleIDRequired)
}

func (suite *BookmarkServiceTestSuite) TestDeleteBookmark_HeaderIdentity() {
	clues := domain.IdentityClues{Session: &domain.SessionPayload{User: domain.SessionUser{Email: "a@example.com"}}, HeaderUserID: "header-user"}
	suite.mockRepo.On("DeleteBookmark", mock.Anything, "header-user", testArticleID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteBookmark(context.Background(), clues, testArticleID))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookmarkServiceTestSuite) TestDeleteBookmark_StoreError() {
	suite.mockRepo.On("DeleteBookmark", mock.Anything, "u1", testArticleID).Return(assert.AnError).Once()

	err := suite.service.DeleteBookmark(context.Background(), sessionClues("u1"), testArticleID)

	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Contains(err.Error(), services.MsgFailedToRemove)
}

func TestBookmarkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookmarkServiceTestSuite))
}
