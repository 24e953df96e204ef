package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/core/services"
	"github.com/SscSPs/news_digest_app/internal/dto"
	"github.com/SscSPs/news_digest_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func registerSummaryRoutes(rg *gin.RouterGroup, ss portssvc.SummarySvcFacade, limiter gin.HandlerFunc) {
	h := &summaryHandler{summaryService: ss}
	chain := append(withLimiter(limiter), h.summarize)
	rg.POST("/summarize", chain...)
}

// summarize godoc
// @Summary Summarize an article
// @Description Relays article text to the LLM and returns a markdown summary
// @Tags summary
// @Accept json
// @Produce json
// @Param request body dto.SummarizeRequest true "Article text"
// @Success 200 {object} dto.SummarizeResponse
// @Failure 400 {object} dto.ErrorResponse "Missing prompt in request body"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate summary"
// @Router /api/summarize [post]
func (h *summaryHandler) summarize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Summarize", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: services.MsgMissingPrompt})
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), req.Prompt, req.MaxTokens)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), dto.ErrorResponse{Error: messageFor(err, services.MsgSummaryFailed)})
		return
	}
	c.JSON(http.StatusOK, dto.SummarizeResponse{Summary: summary})
}
