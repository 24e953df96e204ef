package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/dto"
	"github.com/SscSPs/news_digest_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultNewsSection = "general"

// pagesHandler serves the protected pages. Each render resolves its own
// guard from the request session.
type pagesHandler struct {
	bookmarkService portssvc.BookmarkSvcFacade
}

func newPagesHandler(bs portssvc.BookmarkSvcFacade) *pagesHandler {
	return &pagesHandler{bookmarkService: bs}
}

func registerPageRoutes(r *gin.Engine, bs portssvc.BookmarkSvcFacade) {
	h := newPagesHandler(bs)
	r.GET("/news", h.news)
	r.GET("/news/:section", h.news)
	r.GET("/saved", h.saved)
}

// newsPage is the authenticated content of /news.
type newsPage struct {
	Section string `json:"section"`
}

// savedPage is the authenticated content of /saved.
type savedPage struct {
	Bookmarks []domain.Bookmark `json:"bookmarks"`
}

// guard resolves a fresh guard for this request. It writes the 401 panel and
// returns nil when the request is not authenticated.
func (h *pagesHandler) guard(c *gin.Context) *domain.GuardState {
	g := domain.NewGuardState()
	if _, err := g.Resolve(sessionOrNil(c)); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Guard resolved twice", slog.String("error", err.Error()))
	}
	if g.Status() != domain.GuardAuthenticated {
		c.JSON(http.StatusUnauthorized, domain.RenderGuard(g, c.Request.URL.Path, nil))
		return nil
	}
	return g
}

// news godoc
// @Summary News page
// @Description Protected news page for a section
// @Tags pages
// @Produce json
// @Param section path string false "News section"
// @Success 200 {object} domain.GuardView
// @Failure 401 {object} domain.GuardView
// @Router /news/{section} [get]
func (h *pagesHandler) news(c *gin.Context) {
	g := h.guard(c)
	if g == nil {
		return
	}
	section := c.Param("section")
	if section == "" {
		section = defaultNewsSection
	}
	c.JSON(http.StatusOK, domain.RenderGuard(g, c.Request.URL.Path, newsPage{Section: section}))
}

// saved godoc
// @Summary Saved articles page
// @Description Protected page listing the caller's bookmarks
// @Tags pages
// @Produce json
// @Success 200 {object} domain.GuardView
// @Failure 401 {object} domain.GuardView
// @Router /saved [get]
func (h *pagesHandler) saved(c *gin.Context) {
	g := h.guard(c)
	if g == nil {
		return
	}

	bookmarks, err := h.bookmarkService.ListBookmarks(c.Request.Context(), domain.IdentityClues{Session: g.Session()})
	if err != nil {
		c.JSON(apperrors.StatusFor(err), dto.MessageResponse{Message: messageFor(err, "Failed to fetch bookmarks")})
		return
	}
	c.JSON(http.StatusOK, domain.RenderGuard(g, c.Request.URL.Path, savedPage{Bookmarks: bookmarks}))
}
