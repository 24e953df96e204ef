package repositories

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
)

// AccountReader defines read operations for provider accounts
type AccountReader interface {
	// FindAccountByUserAndProvider finds the account a user holds with a provider.
	FindAccountByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.Account, error)

	// FindAccountByProviderAccountID finds the account for a provider-issued id.
	FindAccountByProviderAccountID(ctx context.Context, provider domain.Provider, providerAccountID string) (*domain.Account, error)
}

// AccountWriter defines write operations for provider accounts
type AccountWriter interface {
	// LinkAccount inserts a new account. A second account for the same
	// (provider, providerAccountId) yields apperrors.ErrDuplicate.
	LinkAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccountTokens replaces the token material of an account.
	UpdateAccountTokens(ctx context.Context, accountID string, tokens domain.TokenSet) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
