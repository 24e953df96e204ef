package mapping

import (
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/SscSPs/news_digest_app/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToModelAccount converts a domain Account to a model Account.
// The caller is responsible for validating UserID beforehand.
func ToModelAccount(d domain.Account) models.Account {
	id, _ := primitive.ObjectIDFromHex(d.ID)
	userID, _ := primitive.ObjectIDFromHex(d.UserID)
	return models.Account{
		ID:                id,
		UserID:            userID,
		Type:              d.Type,
		Provider:          string(d.Provider),
		ProviderAccountID: d.ProviderAccountID,
		AccessToken:       d.Tokens.AccessToken,
		RefreshToken:      d.Tokens.RefreshToken,
		ExpiresAt:         d.Tokens.ExpiresAt,
		TokenType:         d.Tokens.TokenType,
		Scope:             d.Tokens.Scope,
		IDToken:           d.Tokens.IDToken,
		SessionState:      d.Tokens.SessionState,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:                m.ID.Hex(),
		UserID:            m.UserID.Hex(),
		Type:              m.Type,
		Provider:          domain.Provider(m.Provider),
		ProviderAccountID: m.ProviderAccountID,
		Tokens: domain.TokenSet{
			AccessToken:  m.AccessToken,
			RefreshToken: m.RefreshToken,
			ExpiresAt:    m.ExpiresAt,
			TokenType:    m.TokenType,
			Scope:        m.Scope,
			IDToken:      m.IDToken,
			SessionState: m.SessionState,
		},
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
