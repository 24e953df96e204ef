package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// authRoutePrefix is never guarded, otherwise signing in would need a session.
const authRoutePrefix = "/api/auth"

// IsProtectedPath reports whether path equals one of prefixes or lies below it.
func IsProtectedPath(prefixes []string, path string) bool {
	if path == authRoutePrefix || strings.HasPrefix(path, authRoutePrefix+"/") {
		return false
	}
	for _, prefix := range prefixes {
		if prefix == "/" {
			return true
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// RouteGuard redirects requests for protected paths that carry no valid
// session to the sign-in page, with the requested path as callbackUrl.
// A session already materialized by SessionMiddleware is reused.
func RouteGuard(prefixes []string, materializer portssvc.SessionMaterializerSvc, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !IsProtectedPath(prefixes, path) {
			c.Next()
			return
		}

		if session, ok := GetSessionFromContext(c); ok && session.HasUser() {
			c.Next()
			return
		}

		if token := TokenFromRequest(c, cookieName); token != "" {
			session, err := materializer.Materialize(c.Request.Context(), token)
			if err == nil && session.HasUser() {
				setSession(c, session)
				c.Next()
				return
			}
		}

		GetLoggerFromContext(c).Info("Redirecting unauthenticated request to sign-in", slog.String("callback_url", path))
		c.Redirect(http.StatusTemporaryRedirect, domain.SignInPath(path))
		c.Abort()
	}
}
