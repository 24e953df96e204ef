package domain

import "time"

// DefaultBookmarkCategory is used when a bookmark is saved without a category.
const DefaultBookmarkCategory = "general"

// ArticleSource names the publisher of an article.
type ArticleSource struct {
	Name string `json:"name"`
}

// Bookmark is an article saved by a user. UserID is whichever identifier the
// caller's identity resolved to, not a reference to a User record.
// (UserID, ArticleID) is unique.
type Bookmark struct {
	ID          string        `json:"_id"`
	UserID      string        `json:"userId"`
	ArticleID   string        `json:"articleId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Source      ArticleSource `json:"source"`
	Category    string        `json:"category"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
