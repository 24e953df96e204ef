package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const (
	githubAPIBaseURL  = "https://api.github.com"
	googleUserinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// IDTokenValidator validates a Google ID token for an audience.
type IDTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type providerOptions struct {
	endpoint    *oauth2.Endpoint
	apiBaseURL  string
	userinfoURL string
	validator   IDTokenValidator
}

// ProviderOption configures an OAuth provider client.
type ProviderOption func(*providerOptions)

// WithOAuthEndpoint overrides the provider's authorization and token endpoints.
func WithOAuthEndpoint(endpoint oauth2.Endpoint) ProviderOption {
	return func(o *providerOptions) { o.endpoint = &endpoint }
}

// WithAPIBaseURL overrides the GitHub REST API base URL.
func WithAPIBaseURL(url string) ProviderOption {
	return func(o *providerOptions) { o.apiBaseURL = url }
}

// WithUserinfoURL overrides the Google userinfo endpoint.
func WithUserinfoURL(url string) ProviderOption {
	return func(o *providerOptions) { o.userinfoURL = url }
}

// WithIDTokenValidator replaces idtoken.Validate.
func WithIDTokenValidator(v IDTokenValidator) ProviderOption {
	return func(o *providerOptions) { o.validator = v }
}

func buildProviderOptions(opts []ProviderOption) providerOptions {
	o := providerOptions{
		apiBaseURL:  githubAPIBaseURL,
		userinfoURL: googleUserinfoURL,
		validator:   idtoken.Validate,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// --- GitHub ---

type githubProvider struct {
	oauth2Config *oauth2.Config
	apiBaseURL   string
}

// NewGitHubProvider creates the GitHub OAuth client.
func NewGitHubProvider(clientID, clientSecret, redirectURL string, opts ...ProviderOption) portssvc.OAuthProviderClient {
	o := buildProviderOptions(opts)
	endpoint := github.Endpoint
	if o.endpoint != nil {
		endpoint = *o.endpoint
	}
	return &githubProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     endpoint,
		},
		apiBaseURL: o.apiBaseURL,
	}
}

func (p *githubProvider) ID() domain.Provider { return domain.ProviderGitHub }
func (p *githubProvider) DisplayName() string { return "GitHub" }

func (p *githubProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *githubProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange github oauth code for token: %w", err)
	}
	return token, nil
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// FetchProfile reads /user, and /user/emails when the profile email is private.
func (p *githubProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.OAuthProfile, error) {
	client := p.oauth2Config.Client(ctx, token)

	var user githubUser
	if err := getJSON(ctx, client, p.apiBaseURL+"/user", &user); err != nil {
		return nil, fmt.Errorf("failed to get user info from github: %w", err)
	}
	if user.ID == 0 {
		return nil, errors.New("github user info has no id")
	}

	profile := &domain.OAuthProfile{
		Provider:          domain.ProviderGitHub,
		ProviderAccountID: strconv.FormatInt(user.ID, 10),
		Email:             user.Email,
		Name:              user.Name,
		Image:             user.AvatarURL,
	}
	if profile.Name == "" {
		profile.Name = user.Login
	}

	if profile.Email == "" {
		var emails []githubEmail
		if err := getJSON(ctx, client, p.apiBaseURL+"/user/emails", &emails); err != nil {
			return nil, fmt.Errorf("failed to get emails from github: %w", err)
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				profile.Email = e.Email
				profile.EmailVerified = true
				break
			}
		}
	}
	return profile, nil
}

// --- Google ---

type googleProvider struct {
	oauth2Config *oauth2.Config
	userinfoURL  string
	validate     IDTokenValidator
}

// NewGoogleProvider creates the Google OAuth client.
func NewGoogleProvider(clientID, clientSecret, redirectURL string, opts ...ProviderOption) portssvc.OAuthProviderClient {
	o := buildProviderOptions(opts)
	endpoint := google.Endpoint
	if o.endpoint != nil {
		endpoint = *o.endpoint
	}
	return &googleProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoint,
		},
		userinfoURL: o.userinfoURL,
		validate:    o.validator,
	}
}

func (p *googleProvider) ID() domain.Provider { return domain.ProviderGoogle }
func (p *googleProvider) DisplayName() string { return "Google" }

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange google oauth code for token: %w", err)
	}
	return token, nil
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// FetchProfile prefers the verified ID token and only calls userinfo when
// the token response carried none.
func (p *googleProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.OAuthProfile, error) {
	if raw, ok := token.Extra("id_token").(string); ok && raw != "" {
		payload, err := p.validate(ctx, raw, p.oauth2Config.ClientID)
		if err != nil {
			return nil, fmt.Errorf("google ID token validation failed: %w", err)
		}
		profile := &domain.OAuthProfile{
			Provider:          domain.ProviderGoogle,
			ProviderAccountID: payload.Subject,
		}
		profile.Email, _ = payload.Claims["email"].(string)
		profile.Name, _ = payload.Claims["name"].(string)
		profile.Image, _ = payload.Claims["picture"].(string)
		profile.EmailVerified, _ = payload.Claims["email_verified"].(bool)
		return profile, nil
	}

	var info googleUserInfo
	if err := getJSON(ctx, p.oauth2Config.Client(ctx, token), p.userinfoURL, &info); err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	return &domain.OAuthProfile{
		Provider:          domain.ProviderGoogle,
		ProviderAccountID: info.Sub,
		Email:             info.Email,
		Name:              info.Name,
		Image:             info.Picture,
		EmailVerified:     info.EmailVerified,
	}, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
