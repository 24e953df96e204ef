package middleware

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the materialized session.
const sessionKey = contextKey("session")

// setSession stores the session in both the Gin context and the request context.
func setSession(c *gin.Context, session *domain.SessionPayload) {
	c.Set(string(sessionKey), session)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), sessionKey, session))
}

// GetSessionFromContext retrieves the session materialized for this request.
// It returns false when the request carries no valid session token.
func GetSessionFromContext(c *gin.Context) (*domain.SessionPayload, bool) {
	if v, exists := c.Get(string(sessionKey)); exists {
		session, ok := v.(*domain.SessionPayload)
		return session, ok && session != nil
	}
	return SessionFromCtx(c.Request.Context())
}

// SessionFromCtx retrieves the session from a standard context.
func SessionFromCtx(ctx context.Context) (*domain.SessionPayload, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.SessionPayload)
	return session, ok && session != nil
}

// GetUserIDFromContext returns the identifier of the signed-in user: the
// resolved user id, or the email when the session carries no id.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	session, ok := GetSessionFromContext(c)
	if !ok {
		return "", false
	}
	if session.User.ID != "" {
		return session.User.ID, true
	}
	if session.User.Email != "" {
		return session.User.Email, true
	}
	return "", false
}
