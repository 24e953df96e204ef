package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// TokenFromRequest returns the session token from the session cookie, or
// from a Bearer Authorization header when there is no cookie.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SessionMiddleware materializes the session of every request that carries a
// session token. It never rejects a request: an invalid token leaves the
// request without a session, and handlers decide what that means.
func SessionMiddleware(materializer portssvc.SessionMaterializerSvc, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		session, err := materializer.Materialize(c.Request.Context(), token)
		if err != nil {
			GetLoggerFromContext(c).Debug("Ignoring unusable session token", slog.String("error", err.Error()))
			c.Next()
			return
		}

		setSession(c, session)
		if session.User.ID != "" {
			enrichLogger(c, slog.String("user_id", session.User.ID))
		}
		c.Next()
	}
}

// RequireSession aborts with 401 unless SessionMiddleware found a session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok || !session.HasUser() {
			GetLoggerFromContext(c).Warn("Request without session rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			return
		}
		c.Next()
	}
}
