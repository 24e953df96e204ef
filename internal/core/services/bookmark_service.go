package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/dto"
	"github.com/SscSPs/news_digest_app/internal/utils"
	"github.com/SscSPs/news_digest_app/internal/utils/articleid"
	"github.com/go-playground/validator/v10"
)

// Messages returned to bookmark API clients.
const (
	MsgUserIDNotFound        = "User ID not found"
	MsgInvalidArticleData    = "Invalid article data"
	MsgArticleIDRequired     = "Article ID is required"
	MsgBookmarkNotFound      = "Bookmark not found"
	MsgFailedToFetch         = "Failed to fetch bookmarks"
	MsgFailedToBookmark      = "Failed to bookmark article"
	MsgFailedToRemove        = "Failed to remove bookmark"
	bookmarkOutcomeOK        = "ok"
	bookmarkOutcomeDuplicate = "duplicate"
	bookmarkOutcomeError     = "error"
)

var errEmptyTitle = errors.New("article title has no text")

type bookmarkService struct {
	BaseService
	repo      portsrepo.BookmarkRepositoryFacade
	sources   []IdentitySource
	validate  *validator.Validate
	sanitizer *utils.TextSanitizer
	metrics   portssvc.MetricsRecorder
}

// BookmarkServiceOption is a function that configures a bookmarkService
type BookmarkServiceOption func(*bookmarkService)

// WithIdentitySources replaces DefaultIdentitySources.
func WithIdentitySources(sources []IdentitySource) BookmarkServiceOption {
	return func(s *bookmarkService) { s.sources = sources }
}

// WithBookmarkMetrics sets the recorder for bookmark operation counts.
func WithBookmarkMetrics(m portssvc.MetricsRecorder) BookmarkServiceOption {
	return func(s *bookmarkService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewBookmarkService creates a new bookmark service with the given options
func NewBookmarkService(repo portsrepo.BookmarkRepositoryFacade, opts ...BookmarkServiceOption) portssvc.BookmarkSvcFacade {
	s := &bookmarkService{
		repo:      repo,
		sources:   DefaultIdentitySources,
		validate:  validator.New(),
		sanitizer: utils.NewTextSanitizer(),
		metrics:   portssvc.NopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.BookmarkSvcFacade = (*bookmarkService)(nil)

func (s *bookmarkService) resolveUser(ctx context.Context, clues domain.IdentityClues) (string, error) {
	userID, source, ok := ResolveIdentity(clues, s.sources)
	if !ok {
		s.LogInfo(ctx, "Could not resolve user identity for bookmark request")
		return "", apperrors.NewValidationError(MsgUserIDNotFound, apperrors.ErrIdentityUnresolved)
	}
	s.LogDebug(ctx, "Resolved bookmark user", slog.String("identity_source", source))
	return userID, nil
}

// ListBookmarks returns the bookmarks of the resolved identity, newest first.
func (s *bookmarkService) ListBookmarks(ctx context.Context, clues domain.IdentityClues) ([]domain.Bookmark, error) {
	userID, err := s.resolveUser(ctx, clues)
	if err != nil {
		return nil, err
	}

	bookmarks, err := s.repo.ListBookmarksByUser(ctx, userID)
	if err != nil {
		s.metrics.RecordBookmarkOperation("list", bookmarkOutcomeError)
		s.LogError(ctx, err, "Failed to list bookmarks", slog.String("user_id", userID))
		return nil, apperrors.NewTransientStoreError(MsgFailedToFetch, err)
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	s.metrics.RecordBookmarkOperation("list", bookmarkOutcomeOK)
	return bookmarks, nil
}

// CreateBookmark validates the article before resolving the identity, so a
// malformed body is reported as such even for an unknown user.
func (s *bookmarkService) CreateBookmark(ctx context.Context, clues domain.IdentityClues, req dto.CreateBookmarkRequest) (*domain.Bookmark, bool, error) {
	if req.Article == nil {
		return nil, false, apperrors.NewValidationError(MsgInvalidArticleData, nil)
	}
	if err := s.validate.Struct(req.Article); err != nil {
		return nil, false, apperrors.NewValidationError(MsgInvalidArticleData, err)
	}
	if s.sanitizer.Sanitize(req.Article.Title) == "" {
		return nil, false, apperrors.NewValidationError(MsgInvalidArticleData, errEmptyTitle)
	}

	if clues.BodyUserID == "" {
		clues.BodyUserID = req.UserID
	}
	userID, err := s.resolveUser(ctx, clues)
	if err != nil {
		return nil, false, err
	}

	articleID, err := articleid.Encode(req.Article.URL)
	if err != nil {
		return nil, false, apperrors.NewValidationError(MsgInvalidArticleData, err)
	}

	existing, err := s.repo.FindBookmark(ctx, userID, articleID)
	if err == nil {
		s.metrics.RecordBookmarkOperation("create", bookmarkOutcomeDuplicate)
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.metrics.RecordBookmarkOperation("create", bookmarkOutcomeError)
		s.LogError(ctx, err, "Failed to check for existing bookmark", slog.String("user_id", userID))
		return nil, false, apperrors.NewTransientStoreError(MsgFailedToBookmark, err)
	}

	created, err := s.repo.CreateBookmark(ctx, s.newBookmark(userID, articleID, req))
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Lost a race with a concurrent create of the same article.
		winner, findErr := s.repo.FindBookmark(ctx, userID, articleID)
		if findErr == nil {
			s.metrics.RecordBookmarkOperation("create", bookmarkOutcomeDuplicate)
			return winner, false, nil
		}
		err = findErr
	}
	if err != nil {
		s.metrics.RecordBookmarkOperation("create", bookmarkOutcomeError)
		s.LogError(ctx, err, "Failed to create bookmark", slog.String("user_id", userID))
		return nil, false, apperrors.NewTransientStoreError(MsgFailedToBookmark, err)
	}

	s.metrics.RecordBookmarkOperation("create", bookmarkOutcomeOK)
	s.LogInfo(ctx, "Bookmark created", slog.String("user_id", userID), slog.String("article_id", articleID))
	return created, true, nil
}

func (s *bookmarkService) newBookmark(userID, articleID string, req dto.CreateBookmarkRequest) domain.Bookmark {
	a := req.Article
	category := req.Category
	if category == "" {
		category = domain.DefaultBookmarkCategory
	}
	source := ""
	if a.Source != nil {
		source = a.Source.Name
	}
	return domain.Bookmark{
		UserID:      userID,
		ArticleID:   articleID,
		Title:       strings.TrimSpace(a.Title),
		Description: s.sanitizer.Sanitize(a.Description),
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		PublishedAt: a.PublishedAt,
		Source:      domain.ArticleSource{Name: source},
		Category:    category,
	}
}

// DeleteBookmark removes a saved article of the resolved identity.
func (s *bookmarkService) DeleteBookmark(ctx context.Context, clues domain.IdentityClues, articleID string) error {
	if articleID == "" {
		return apperrors.NewValidationError(MsgArticleIDRequired, nil)
	}
	userID, err := s.resolveUser(ctx, clues)
	if err != nil {
		return err
	}

	err = s.repo.DeleteBookmark(ctx, userID, articleID)
	switch {
	case err == nil:
		s.metrics.RecordBookmarkOperation("delete", bookmarkOutcomeOK)
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		s.metrics.RecordBookmarkOperation("delete", "not_found")
		return apperrors.NewNotFoundError(MsgBookmarkNotFound)
	default:
		s.metrics.RecordBookmarkOperation("delete", bookmarkOutcomeError)
		s.LogError(ctx, err, "Failed to delete bookmark", slog.String("user_id", userID))
		return apperrors.NewTransientStoreError(MsgFailedToRemove, err)
	}
}
