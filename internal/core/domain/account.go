package domain

// AccountTypeOAuth is the only account type created by this application.
const AccountTypeOAuth = "oauth"

// TokenSet is the OAuth token material stored with an account. These are the
// only account fields that change after the account is linked.
type TokenSet struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
	ExpiresAt    int64  `json:"expiresAt,omitempty"` // unix seconds
	TokenType    string `json:"tokenType,omitempty"`
	Scope        string `json:"scope,omitempty"`
	IDToken      string `json:"-"`
	SessionState string `json:"-"`
}

// Account binds a User to one provider identity.
// (Provider, ProviderAccountID) is globally unique.
type Account struct {
	ID                string   `json:"id"`
	UserID            string   `json:"userId"`
	Type              string   `json:"type"`
	Provider          Provider `json:"provider"`
	ProviderAccountID string   `json:"providerAccountId"`
	Tokens            TokenSet `json:"tokens"`
	Timestamps
}
