package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const insecureDefaultSecret = "a-very-secret-key-should-be-longer-and-random"

// ErrMissingMongoURI is returned when no document store connection string is configured.
var ErrMissingMongoURI = errors.New("MONGODB_URI environment variable not set")

// Config holds application configuration.
type Config struct {
	Port         string `mapstructure:"PORT"`
	IsProduction bool   `mapstructure:"IS_PRODUCTION"`

	// Document store
	MongoURI       string `mapstructure:"MONGODB_URI"`
	MongoDatabase  string `mapstructure:"MONGODB_DATABASE"`
	RunMigrations  bool   `mapstructure:"RUN_MIGRATIONS"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	// Session token
	SessionSecret     string
	SessionMaxAge     time.Duration
	SessionCookieName string `mapstructure:"SESSION_COOKIE_NAME"`
	JWTIssuer         string `mapstructure:"JWT_ISSUER"`

	// External OAuth Providers
	GitHubClientID       string `mapstructure:"GITHUB_CLIENT_ID"`
	GitHubClientSecret   string `mapstructure:"GITHUB_CLIENT_SECRET"`
	GoogleClientID       string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret   string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	OAuthRedirectBaseURL string `mapstructure:"OAUTH_REDIRECT_BASE_URL"`
	FrontendBaseURL      string `mapstructure:"FRONTEND_BASE_URL"`

	// Route guard
	ProtectedPathPrefixes []string

	// Summary relay
	GroqAPIKey string `mapstructure:"GROQ_API_KEY"`
	GroqAPIURL string `mapstructure:"GROQ_API_URL"`

	// Analytics
	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`

	// Rate limits, in limiter format ("20-M")
	AuthRateLimit    string `mapstructure:"AUTH_RATE_LIMIT"`
	SummaryRateLimit string `mapstructure:"SUMMARY_RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	setDefaults()
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.MongoURI = viper.GetString("MONGODB_URI")
	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}
	cfg.MongoDatabase = viper.GetString("MONGODB_DATABASE")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		if cfg.IsProduction {
			return nil, errors.New("SESSION_SECRET environment variable not set")
		}
		cfg.SessionSecret = insecureDefaultSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: SESSION_SECRET environment variable not set. Using default insecure key.")
	}

	maxAgeStr := viper.GetString("SESSION_MAX_AGE")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil || maxAge <= 0 {
		maxAge = 30 * 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_MAX_AGE ('%s'). Defaulting to %s.\n", maxAgeStr, maxAge.String())
	}
	cfg.SessionMaxAge = maxAge

	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GitHubClientID = viper.GetString("GITHUB_CLIENT_ID")
	cfg.GitHubClientSecret = viper.GetString("GITHUB_CLIENT_SECRET")
	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.OAuthRedirectBaseURL = strings.TrimRight(viper.GetString("OAUTH_REDIRECT_BASE_URL"), "/")
	cfg.FrontendBaseURL = strings.TrimRight(viper.GetString("FRONTEND_BASE_URL"), "/")

	// Log warnings for missing OAuth pairs; the provider is simply not offered.
	if cfg.GitHubClientID == "" || cfg.GitHubClientSecret == "" {
		log.Println("Warning: GITHUB_CLIENT_ID/GITHUB_CLIENT_SECRET not set. GitHub sign-in will not be offered.")
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set. Google sign-in will not be offered.")
	}

	cfg.ProtectedPathPrefixes = parsePrefixes(viper.GetString("PROTECTED_PATH_PREFIXES"))

	cfg.GroqAPIKey = viper.GetString("GROQ_API_KEY")
	cfg.GroqAPIURL = viper.GetString("GROQ_API_URL")
	if cfg.GroqAPIKey == "" {
		log.Println("Warning: GROQ_API_KEY not set. Article summaries will not be available.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.SummaryRateLimit = viper.GetString("SUMMARY_RATE_LIMIT")

	return cfg, nil
}

// OAuthCallbackURL returns the redirect URL registered with a provider.
func (c *Config) OAuthCallbackURL(provider string) string {
	return c.OAuthRedirectBaseURL + "/api/auth/callback/" + provider
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MONGODB_URI", "")
	viper.SetDefault("MONGODB_DATABASE", "news_digest")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_MAX_AGE", "720h")
	viper.SetDefault("SESSION_COOKIE_NAME", "nda.session_token")
	viper.SetDefault("JWT_ISSUER", "news-digest-app")
	viper.SetDefault("GITHUB_CLIENT_ID", "")
	viper.SetDefault("GITHUB_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("OAUTH_REDIRECT_BASE_URL", "http://localhost:8080")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("PROTECTED_PATH_PREFIXES", "/news,/saved")
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("AUTH_RATE_LIMIT", "20-M")
	viper.SetDefault("SUMMARY_RATE_LIMIT", "10-M")
}

// parsePrefixes splits a comma separated prefix list, normalising each entry
// to a leading slash and no trailing slash.
func parsePrefixes(raw string) []string {
	var prefixes []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		if len(p) > 1 {
			p = strings.TrimRight(p, "/")
		}
		prefixes = append(prefixes, p)
	}
	return prefixes
}
