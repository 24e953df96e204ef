package dto

import "github.com/SscSPs/news_digest_app/internal/core/domain"

// ArticleSourceRequest names the publisher of an article being bookmarked.
type ArticleSourceRequest struct {
	Name string `json:"name"`
}

// ArticleRequest is the article payload of a bookmark request.
type ArticleRequest struct {
	URL         string                `json:"url" validate:"required"`
	Title       string                `json:"title" validate:"required"`
	Description string                `json:"description"`
	URLToImage  string                `json:"urlToImage"`
	PublishedAt string                `json:"publishedAt" validate:"required"`
	Source      *ArticleSourceRequest `json:"source"`
}

// CreateBookmarkRequest is the body of POST /api/bookmarks.
type CreateBookmarkRequest struct {
	Article  *ArticleRequest `json:"article"`
	Category string          `json:"category"`
	UserID   string          `json:"userId"`
}

// BookmarkMutationResponse is returned by bookmark create.
type BookmarkMutationResponse struct {
	Message  string           `json:"message"`
	Bookmark *domain.Bookmark `json:"bookmark,omitempty"`
}

// MessageResponse is the generic `{message}` body used by the bookmark API.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
