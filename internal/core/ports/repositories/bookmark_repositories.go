package repositories

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
)

// BookmarkReader defines read operations for bookmarks
type BookmarkReader interface {
	// ListBookmarksByUser returns every bookmark of a user, newest first.
	ListBookmarksByUser(ctx context.Context, userID string) ([]domain.Bookmark, error)

	// FindBookmark returns apperrors.ErrNotFound when the user has not saved the article.
	FindBookmark(ctx context.Context, userID, articleID string) (*domain.Bookmark, error)
}

// BookmarkWriter defines write operations for bookmarks
type BookmarkWriter interface {
	// CreateBookmark inserts a bookmark. A second bookmark for the same
	// (userId, articleId) yields apperrors.ErrDuplicate.
	CreateBookmark(ctx context.Context, bookmark domain.Bookmark) (*domain.Bookmark, error)

	// DeleteBookmark removes a bookmark, returning apperrors.ErrNotFound when none matched.
	DeleteBookmark(ctx context.Context, userID, articleID string) error
}

// BookmarkRepositoryFacade combines all bookmark-related repository interfaces
type BookmarkRepositoryFacade interface {
	BookmarkReader
	BookmarkWriter
}
