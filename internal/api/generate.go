package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/middleware"
	"github.com/pageza/dapur-ai/backend/internal/service"
)

// GeneratePath is the mediation endpoint.
const GeneratePath = "/api/generate"

// GenerateHandler mediates between the browser and the recipe generator.
type GenerateHandler struct {
	generator service.RecipeGenerator
	locales   *locale.Matcher
	log       logrus.FieldLogger
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(generator service.RecipeGenerator, locales *locale.Matcher, log logrus.FieldLogger) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		locales:   locales,
		log:       log,
	}
}

// RegisterRoutes registers the generate route for every method so that
// anything other than POST gets a JSON 405.
func (h *GenerateHandler) RegisterRoutes(router gin.IRoutes) {
	router.Any(GeneratePath, h.Generate)
}

type generateRequest struct {
	Ingredients *string `json:"ingredients"`
}

// Generate handles POST /api/generate.
func (h *GenerateHandler) Generate(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		h.fail(c, outcomeMethodNotAllowed, http.StatusMethodNotAllowed, middleware.ErrorResponse{Error: "Method Not Allowed"})
		return
	}

	loc := h.locales.Match(c.GetHeader("Accept-Language"))
	msgs := locale.For(loc)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Ingredients == nil || strings.TrimSpace(*req.Ingredients) == "" {
		h.fail(c, outcomeInvalidInput, http.StatusBadRequest, middleware.ErrorResponse{Error: msgs.InvalidIngredients})
		return
	}

	resp, err := h.generator.Generate(c.Request.Context(), *req.Ingredients, loc)
	if err != nil {
		h.respondError(c, err, msgs)
		return
	}

	generateOutcomes.WithLabelValues(outcomeSuccess).Inc()
	c.JSON(http.StatusOK, resp)
}

func (h *GenerateHandler) fail(c *gin.Context, outcome string, status int, body middleware.ErrorResponse) {
	generateOutcomes.WithLabelValues(outcome).Inc()
	c.AbortWithStatusJSON(status, body)
}
