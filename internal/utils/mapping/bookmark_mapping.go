package mapping

import (
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/SscSPs/news_digest_app/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToModelBookmark converts a domain Bookmark to a model Bookmark
func ToModelBookmark(d domain.Bookmark) models.Bookmark {
	id, _ := primitive.ObjectIDFromHex(d.ID)
	return models.Bookmark{
		ID:          id,
		UserID:      d.UserID,
		ArticleID:   d.ArticleID,
		Title:       d.Title,
		Description: d.Description,
		URL:         d.URL,
		URLToImage:  d.URLToImage,
		PublishedAt: d.PublishedAt,
		Source:      models.ArticleSource{Name: d.Source.Name},
		Category:    d.Category,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainBookmark converts a model Bookmark to a domain Bookmark
func ToDomainBookmark(m models.Bookmark) domain.Bookmark {
	return domain.Bookmark{
		ID:          m.ID.Hex(),
		UserID:      m.UserID,
		ArticleID:   m.ArticleID,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		URLToImage:  m.URLToImage,
		PublishedAt: m.PublishedAt,
		Source:      domain.ArticleSource{Name: m.Source.Name},
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainBookmarkSlice converts a slice of model Bookmarks
func ToDomainBookmarkSlice(ms []models.Bookmark) []domain.Bookmark {
	ds := make([]domain.Bookmark, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBookmark(m)
	}
	return ds
}
