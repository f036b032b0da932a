// Package web serves the browser front end. Each request gets its own
// ViewModel and presenter, which call the JSON API like any other client.
package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/dapur-ai/backend/internal/client"
	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/presenter"
)

// GeneratorFunc returns the generator used for a page in the given locale.
type GeneratorFunc func(loc locale.Locale) presenter.Generator

// Handler renders the recipe page.
type Handler struct {
	generator GeneratorFunc
	locales   *locale.Matcher
	log       logrus.FieldLogger
}

// ClientGenerator builds generators that call the API at baseURL.
func ClientGenerator(baseURL string, opts ...client.Option) GeneratorFunc {
	return func(loc locale.Locale) presenter.Generator {
		return client.New(baseURL, loc, opts...)
	}
}

// NewHandler creates a Handler.
func NewHandler(generator GeneratorFunc, locales *locale.Matcher, log logrus.FieldLogger) *Handler {
	return &Handler{
		generator: generator,
		locales:   locales,
		log:       log,
	}
}

// RegisterRoutes installs the page template and routes on router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(presenter.HTMLTemplate())
	router.GET("/", h.Index)
	router.POST("/", h.Submit)
}

// Index renders the empty form.
func (h *Handler) Index(c *gin.Context) {
	loc := h.pageLocale(c)
	vm := presenter.NewViewModel(locale.For(loc))
	h.render(c, loc, vm, "", 0)
}

// Submit runs the presenter for the posted ingredients and renders the result.
func (h *Handler) Submit(c *gin.Context) {
	loc := h.pageLocale(c)
	msgs := locale.For(loc)
	raw := c.PostForm("ingredients")

	// The page is rendered once, so the status cleanup is handed to the
	// browser as a fade-out delay instead of a timer.
	var clearAfter time.Duration
	vm := presenter.NewViewModel(msgs)
	p := presenter.New(h.generator(loc), vm, msgs, h.log.WithField("locale", loc),
		presenter.WithScheduler(func(d time.Duration, _ func()) { clearAfter = d }),
	)
	p.Submit(c.Request.Context(), raw)

	h.render(c, loc, vm, raw, clearAfter)
}

func (h *Handler) render(c *gin.Context, loc locale.Locale, vm *presenter.ViewModel, ingredients string, clearAfter time.Duration) {
	c.HTML(http.StatusOK, presenter.HTMLTemplateName, presenter.PageData{
		Snapshot:         vm.Snapshot(),
		Ingredients:      ingredients,
		Lang:             string(loc),
		StatusClearAfter: clearAfter.Milliseconds(),
	})
}

// pageLocale prefers an explicit lang parameter and falls back to the
// browser's Accept-Language.
func (h *Handler) pageLocale(c *gin.Context) locale.Locale {
	lang := c.PostForm("lang")
	if lang == "" {
		lang = c.Query("lang")
	}
	if lang != "" {
		if loc, err := locale.Parse(lang); err == nil {
			return loc
		}
	}
	return h.locales.Match(c.GetHeader("Accept-Language"))
}
