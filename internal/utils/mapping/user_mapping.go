package mapping

import (
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/SscSPs/news_digest_app/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToModelUser converts a domain User to a model User. An id that is not a
// valid ObjectID hex is left unset so the store assigns one.
func ToModelUser(d domain.User) models.User {
	id, _ := primitive.ObjectIDFromHex(d.ID)
	return models.User{
		ID:            id,
		Name:          d.Name,
		Email:         d.Email,
		Image:         d.Image,
		EmailVerified: d.EmailVerified,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:            m.ID.Hex(),
		Name:          m.Name,
		Email:         m.Email,
		Image:         m.Image,
		EmailVerified: m.EmailVerified,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
