package middleware

import (
	"net/http"

	"github.com/SscSPs/news_digest_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// analyticsEvents maps "METHOD route" to the product event it reports.
// Routes not listed here are not tracked.
var analyticsEvents = map[string]string{
	http.MethodGet + " /news":             "news_viewed",
	http.MethodGet + " /news/:section":    "news_viewed",
	http.MethodGet + " /saved":            "saved_viewed",
	http.MethodPost + " /api/bookmarks":   "article_bookmarked",
	http.MethodDelete + " /api/bookmarks": "bookmark_removed",
	http.MethodPost + " /api/summarize":   "article_summarized",
}

// PosthogMiddleware reports reading, saving and summarizing activity of
// signed-in users once the handler has succeeded.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !posthogClient.IsInitialized() || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		event, tracked := analyticsEvents[c.Request.Method+" "+c.FullPath()]
		if !tracked {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{"status_code": c.Writer.Status()}
		switch event {
		case "news_viewed":
			section := c.Param("section")
			if section == "" {
				section = "general"
			}
			props["section"] = section
		case "article_bookmarked":
			props["already_saved"] = c.Writer.Status() == http.StatusOK
		case "bookmark_removed":
			props["article_id"] = c.Query("articleId")
		}
		posthogClient.Enqueue(userID, event, props)
	}
}

// PosthogEvent sends a custom event for the signed-in user of the request.
// It does nothing for anonymous requests.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	userID, ok := GetUserIDFromContext(c)
	if !ok || !posthogClient.IsInitialized() {
		return
	}
	props := map[string]any{"path": c.Request.URL.Path}
	for k, v := range properties {
		props[k] = v
	}
	posthogClient.Enqueue(userID, eventName, props)
}
