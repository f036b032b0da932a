package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/middleware"
	"github.com/pageza/dapur-ai/backend/internal/service"
)

// respondError maps a generator error onto its HTTP status and body.
func (h *GenerateHandler) respondError(c *gin.Context, err error, msgs locale.Messages) {
	log := h.log.WithField("request_id", middleware.RequestID(c))

	var upstreamErr *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrMissingAPIKey):
		log.Error("GEMINI_API_KEY is not configured")
		h.fail(c, outcomeServerMisconfigured, http.StatusInternalServerError, middleware.ErrorResponse{
			Error: msgs.MissingAPIKey,
		})

	case errors.As(err, &upstreamErr):
		// The body goes back to the caller as detail and is not logged.
		log.WithField("upstream_status", upstreamErr.StatusCode).Warn("upstream rejected generateContent")
		h.fail(c, outcomeUpstreamError, http.StatusBadGateway, middleware.ErrorResponse{
			Error:  "Upstream error",
			Detail: upstreamErr.Body,
		})

	default:
		log.WithError(err).Error("recipe generation failed")
		h.fail(c, outcomeInternalError, http.StatusInternalServerError, middleware.ErrorResponse{
			Error:  "Internal Server Error",
			Detail: err.Error(),
		})
	}
}
