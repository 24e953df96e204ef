package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ArticleSource is the embedded publisher of a bookmarked article.
type ArticleSource struct {
	Name string `bson:"name"`
}

// Bookmark is the document stored in the bookmarks collection.
type Bookmark struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	ArticleID   string             `bson:"articleId"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	URL         string             `bson:"url"`
	URLToImage  string             `bson:"urlToImage"`
	PublishedAt string             `bson:"publishedAt"`
	Source      ArticleSource      `bson:"source"`
	Category    string             `bson:"category"`
	AuditFields `bson:",inline"`
}
