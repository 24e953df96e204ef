package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/core/services"
	"github.com/SscSPs/news_digest_app/internal/dto"
	"github.com/SscSPs/news_digest_app/internal/middleware"
	"github.com/SscSPs/news_digest_app/internal/platform/config"
	"github.com/SscSPs/news_digest_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// OAuthStateCookie holds the signed state between the sign-in redirect and the callback.
const OAuthStateCookie = "nda.oauth_state"

const authErrorTitle = "Authentication Error"

// authHandler serves the sign-in pages and the /api/auth flow.
type authHandler struct {
	oauth    portssvc.OAuthSvcFacade
	sessions portssvc.SessionSvcFacade
	cfg      *config.Config
	posthog  *utils.PosthogClientWrapper
}

func newAuthHandler(oauth portssvc.OAuthSvcFacade, sessions portssvc.SessionSvcFacade, cfg *config.Config, posthog *utils.PosthogClientWrapper) *authHandler {
	return &authHandler{oauth: oauth, sessions: sessions, cfg: cfg, posthog: posthog}
}

// registerAuthRoutes registers the sign-in pages and the rate limited /api/auth group.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, svc *portssvc.ServiceContainer, deps RouteDeps) {
	h := newAuthHandler(svc.OAuth, svc.Session, cfg, deps.Posthog)

	r.GET("/auth/signin", h.signInPage)
	r.GET("/auth/error", h.authError)

	api := r.Group("/api/auth", withLimiter(deps.AuthLimiter)...)
	{
		api.GET("/signin/:provider", h.signIn)
		api.GET("/callback/:provider", h.callback)
		api.GET("/session", h.session)
		api.POST("/signout", h.signOut)
	}
}

func (h *authHandler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.cfg.IsProduction, true)
}

// signInPage godoc
// @Summary List sign-in providers
// @Description Returns the configured OAuth providers and the page to return to after sign-in
// @Tags auth
// @Produce json
// @Param callbackUrl query string false "Local path to return to"
// @Success 200 {object} dto.SignInPageResponse
// @Router /auth/signin [get]
func (h *authHandler) signInPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SignInPageResponse{
		Providers:   h.oauth.Providers(),
		CallbackURL: utils.SafeCallbackPath(c.Query("callbackUrl")),
	})
}

// signIn godoc
// @Summary Start an OAuth sign-in
// @Description Stores a signed state cookie and redirects to the provider consent page
// @Tags auth
// @Param provider path string true "Provider id (github, google)"
// @Param callbackUrl query string false "Local path to return to"
// @Success 302
// @Router /api/auth/signin/{provider} [get]
func (h *authHandler) signIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	provider, ok := domain.ParseProvider(c.Param("provider"))
	if !ok {
		logger.Warn("Sign-in requested for unknown provider", slog.String("provider", c.Param("provider")))
		c.Redirect(http.StatusFound, domain.AuthErrorPath(domain.SignInErrorOAuthSignin, ""))
		return
	}

	start, err := h.oauth.BeginSignIn(c.Request.Context(), provider, c.Query("callbackUrl"))
	if err != nil {
		logger.Warn("Failed to begin sign-in", slog.String("provider", string(provider)), slog.String("error", err.Error()))
		c.Redirect(http.StatusFound, domain.AuthErrorPath(domain.SignInErrorOAuthSignin, ""))
		return
	}

	h.setCookie(c, OAuthStateCookie, start.State, int(services.OAuthStateTTL.Seconds()))
	c.Redirect(http.StatusFound, start.AuthURL)
}

// callback godoc
// @Summary OAuth callback
// @Description Completes the sign-in, sets the session cookie and redirects to the callback page or the auth error page
// @Tags auth
// @Param provider path string true "Provider id (github, google)"
// @Param code query string true "Authorization code"
// @Param state query string true "State returned by the provider"
// @Success 302
// @Router /api/auth/callback/{provider} [get]
func (h *authHandler) callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, _ := c.Cookie(OAuthStateCookie)
	h.setCookie(c, OAuthStateCookie, "", -1)

	provider, ok := domain.ParseProvider(c.Param("provider"))
	if !ok {
		c.Redirect(http.StatusFound, domain.AuthErrorPath(domain.SignInErrorOAuthSignin, ""))
		return
	}

	if providerErr := c.Query("error"); providerErr != "" {
		logger.Info("Provider returned an error", slog.String("provider", string(provider)), slog.String("provider_error", providerErr))
		c.Redirect(http.StatusFound, domain.AuthErrorPath(domain.SignInErrorCallback, ""))
		return
	}

	result, err := h.oauth.CompleteSignIn(ctx, provider, c.Query("code"), c.Query("state"), expectedState)
	if err != nil {
		c.Redirect(http.StatusFound, signInErrorRedirect(err))
		return
	}

	h.setCookie(c, h.cfg.SessionCookieName, result.Token, int(h.cfg.SessionMaxAge.Seconds()))

	h.posthog.Enqueue(result.User.ID, "user_signed_in", map[string]any{
		"provider": string(result.Provider),
		"new_user": result.NewUser,
	})

	c.Redirect(http.StatusFound, result.CallbackURL)
}

// signInErrorRedirect maps a rejected sign-in to its auth error page. The
// provider is only shown for duplicate_email.
func signInErrorRedirect(err error) string {
	var signInErr *apperrors.SignInError
	if !errors.As(err, &signInErr) {
		return domain.AuthErrorPath(domain.SignInErrorCallback, "")
	}
	var provider domain.Provider
	if signInErr.Code == domain.SignInErrorDuplicateEmail {
		provider = domain.Provider(signInErr.Provider)
	}
	return domain.AuthErrorPath(signInErr.Code, provider)
}

// session godoc
// @Summary Current session
// @Description Returns the signed-in user and the session expiry, or an empty object
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /api/auth/session [get]
func (h *authHandler) session(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSessionResponse(sessionOrNil(c)))
}

// signOut godoc
// @Summary Sign out
// @Description Revokes the session token and clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SignOutResponse
// @Router /api/auth/signout [post]
func (h *authHandler) signOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	middleware.PosthogEvent(c, h.posthog, "user_signed_out", nil)

	if token := middleware.TokenFromRequest(c, h.cfg.SessionCookieName); token != "" {
		if err := h.sessions.RevokeToken(c.Request.Context(), token); err != nil {
			// The cookie is cleared regardless; the token stays valid until it expires.
			logger.Warn("Failed to revoke session token", slog.String("error", err.Error()))
		}
	}

	h.setCookie(c, h.cfg.SessionCookieName, "", -1)
	c.JSON(http.StatusOK, dto.SignOutResponse{URL: "/"})
}

// authError godoc
// @Summary Describe a sign-in error
// @Tags auth
// @Produce json
// @Param error query string false "Error code"
// @Param provider query string false "Provider of the failed attempt"
// @Success 200 {object} dto.AuthErrorResponse
// @Router /auth/error [get]
func (h *authHandler) authError(c *gin.Context) {
	c.JSON(http.StatusOK, describeAuthError(c.Query("error"), c.Query("provider")))
}

func describeAuthError(code, provider string) dto.AuthErrorResponse {
	resp := dto.AuthErrorResponse{Error: code, Title: authErrorTitle}
	switch code {
	case domain.SignInErrorDuplicateEmail:
		resp.Message = "This email is already registered with a different provider. You attempted to sign in with " + provider + ", but this email is already linked to another account."
		resp.Options = []string{
			"Sign in with your original provider",
			"Use a different email address with this provider",
		}
	case domain.SignInErrorCallback:
		resp.Message = "There was an error during the authentication process. This could be due to denied permissions or a configuration issue."
	case domain.SignInErrorOAuthSignin:
		resp.Message = "Error occurred while attempting to sign in with the OAuth provider."
	case domain.SignInErrorOAuthCallback:
		resp.Message = "Error occurred during OAuth callback."
	case domain.SignInErrorOAuthCreateAccount:
		resp.Message = "Error creating OAuth account."
	case domain.SignInErrorAccountNotLinked:
		resp.Message = "This account is not linked to the user registered with this email. Sign in with the account you used originally."
	case domain.SignInErrorEmailCreateAccount:
		resp.Message = "Error creating email account."
	case domain.SignInErrorSessionRequired:
		resp.Message = "This page requires authentication. Please sign in to access this page."
	default:
		resp.Message = "An unexpected authentication error occurred. Please try again later."
	}
	return resp
}
