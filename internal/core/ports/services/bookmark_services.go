package services

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/SscSPs/news_digest_app/internal/dto"
)

// BookmarkReaderSvc defines read operations for bookmarks
type BookmarkReaderSvc interface {
	// ListBookmarks returns the bookmarks of the resolved identity, newest first.
	ListBookmarks(ctx context.Context, clues domain.IdentityClues) ([]domain.Bookmark, error)
}

// BookmarkWriterSvc defines write operations for bookmarks
type BookmarkWriterSvc interface {
	// CreateBookmark saves an article for the resolved identity. The boolean is
	// false when the article was already saved and the existing record is returned.
	CreateBookmark(ctx context.Context, clues domain.IdentityClues, req dto.CreateBookmarkRequest) (*domain.Bookmark, bool, error)

	// DeleteBookmark removes a saved article of the resolved identity.
	DeleteBookmark(ctx context.Context, clues domain.IdentityClues, articleID string) error
}

// BookmarkSvcFacade combines all bookmark-related service interfaces
type BookmarkSvcFacade interface {
	BookmarkReaderSvc
	BookmarkWriterSvc
}
