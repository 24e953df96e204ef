package domain

import "strings"

// Provider identifies an external OAuth identity provider.
type Provider string

const (
	ProviderGitHub Provider = "github"
	ProviderGoogle Provider = "google"
)

// ParseProvider normalises a provider id taken from a URL or query parameter.
// The second return value is false for providers the application does not support.
func ParseProvider(raw string) (Provider, bool) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(raw))); p {
	case ProviderGitHub, ProviderGoogle:
		return p, true
	default:
		return "", false
	}
}

// ProviderInfo describes a configured provider for the sign-in page.
type ProviderInfo struct {
	ID        Provider `json:"id"`
	Name      string   `json:"name"`
	SigninURL string   `json:"signinUrl"`
}
