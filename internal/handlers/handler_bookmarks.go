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
	"github.com/gin-gonic/gin"
)

// UserIDHeader is the request header clients may use to name their user id.
const UserIDHeader = "X-User-ID"

const (
	msgBookmarkCreated = "Article bookmarked successfully"
	msgBookmarkExists  = "Article already bookmarked"
	msgBookmarkRemoved = "Bookmark removed successfully"
)

// bookmarkHandler handles HTTP requests related to bookmarks.
type bookmarkHandler struct {
	bookmarkService portssvc.BookmarkSvcFacade
}

// newBookmarkHandler creates a new bookmarkHandler.
func newBookmarkHandler(bs portssvc.BookmarkSvcFacade) *bookmarkHandler {
	return &bookmarkHandler{bookmarkService: bs}
}

// registerBookmarkRoutes registers routes related to bookmarks.
func registerBookmarkRoutes(rg *gin.RouterGroup, bs portssvc.BookmarkSvcFacade) {
	h := newBookmarkHandler(bs)

	bookmarks := rg.Group("/bookmarks", middleware.RequireSession())
	{
		bookmarks.GET("", h.listBookmarks)
		bookmarks.POST("", h.createBookmark)
		bookmarks.DELETE("", h.deleteBookmark)
	}
}

func identityClues(c *gin.Context) domain.IdentityClues {
	return domain.IdentityClues{
		Session:      sessionOrNil(c),
		HeaderUserID: c.GetHeader(UserIDHeader),
	}
}

// messageFor returns the client-facing message of an AppError, or fallback.
func messageFor(err error, fallback string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// writeBookmarkError writes the {message} body for a bookmark service error.
// Store failures also carry a generic error string.
func writeBookmarkError(c *gin.Context, err error, fallback string) {
	status := apperrors.StatusFor(err)
	resp := dto.MessageResponse{Message: messageFor(err, fallback)}
	if status >= http.StatusInternalServerError {
		resp.Error = apperrors.ErrStoreUnavailable.Error()
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Bookmark request failed", slog.String("error", err.Error()))
	}
	c.JSON(status, resp)
}

// listBookmarks godoc
// @Summary List saved articles
// @Description Returns the caller's bookmarks, newest first
// @Tags bookmarks
// @Produce json
// @Param X-User-ID header string false "User id fallback"
// @Success 200 {array} domain.Bookmark
// @Failure 400 {object} dto.MessageResponse "User ID not found"
// @Failure 401 {object} dto.MessageResponse "Unauthorized"
// @Failure 500 {object} dto.MessageResponse "Failed to fetch bookmarks"
// @Security BearerAuth
// @Router /api/bookmarks [get]
func (h *bookmarkHandler) listBookmarks(c *gin.Context) {
	bookmarks, err := h.bookmarkService.ListBookmarks(c.Request.Context(), identityClues(c))
	if err != nil {
		writeBookmarkError(c, err, services.MsgFailedToFetch)
		return
	}
	c.JSON(http.StatusOK, bookmarks)
}

// createBookmark godoc
// @Summary Save an article
// @Description Saves an article for the caller. Saving the same article again returns the existing bookmark.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body dto.CreateBookmarkRequest true "Article to save"
// @Success 201 {object} dto.BookmarkMutationResponse
// @Success 200 {object} dto.BookmarkMutationResponse "Already bookmarked"
// @Failure 400 {object} dto.MessageResponse "Invalid article data or User ID not found"
// @Failure 401 {object} dto.MessageResponse "Unauthorized"
// @Failure 500 {object} dto.MessageResponse "Failed to bookmark article"
// @Security BearerAuth
// @Router /api/bookmarks [post]
func (h *bookmarkHandler) createBookmark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBookmark", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: services.MsgInvalidArticleData})
		return
	}

	bookmark, created, err := h.bookmarkService.CreateBookmark(c.Request.Context(), identityClues(c), req)
	if err != nil {
		writeBookmarkError(c, err, services.MsgFailedToBookmark)
		return
	}

	if !created {
		c.JSON(http.StatusOK, dto.BookmarkMutationResponse{Message: msgBookmarkExists, Bookmark: bookmark})
		return
	}
	c.JSON(http.StatusCreated, dto.BookmarkMutationResponse{Message: msgBookmarkCreated, Bookmark: bookmark})
}

// deleteBookmark godoc
// @Summary Remove a saved article
// @Tags bookmarks
// @Produce json
// @Param articleId query string true "Article id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Article ID is required or User ID not found"
// @Failure 401 {object} dto.MessageResponse "Unauthorized"
// @Failure 404 {object} dto.MessageResponse "Bookmark not found"
// @Failure 500 {object} dto.MessageResponse "Failed to remove bookmark"
// @Security BearerAuth
// @Router /api/bookmarks [delete]
func (h *bookmarkHandler) deleteBookmark(c *gin.Context) {
	err := h.bookmarkService.DeleteBookmark(c.Request.Context(), identityClues(c), c.Query("articleId"))
	if err != nil {
		writeBookmarkError(c, err, services.MsgFailedToRemove)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgBookmarkRemoved})
}
