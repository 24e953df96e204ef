package mapping

import (
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/SscSPs/news_digest_app/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToModelSession(d domain.Session) models.Session {
	id, _ := primitive.ObjectIDFromHex(d.ID)
	return models.Session{
		ID:           id,
		SessionToken: d.SessionToken,
		UserID:       d.UserID,
		Expires:      d.Expires,
	}
}

func ToDomainSession(m models.Session) domain.Session {
	return domain.Session{
		ID:           m.ID.Hex(),
		SessionToken: m.SessionToken,
		UserID:       m.UserID,
		Expires:      m.Expires,
	}
}

func ToModelVerificationToken(d domain.VerificationToken) models.VerificationToken {
	return models.VerificationToken{Identifier: d.Identifier, Token: d.Token, Expires: d.Expires}
}

func ToDomainVerificationToken(m models.VerificationToken) domain.VerificationToken {
	return domain.VerificationToken{Identifier: m.Identifier, Token: m.Token, Expires: m.Expires}
}
