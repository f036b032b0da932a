package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/model"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("gemini api key is not configured")

// RecipeService turns an ingredient list into dish suggestions.
type RecipeService struct {
	content ContentGenerator
	apiKey  func() string
	log     logrus.FieldLogger
}

// NewRecipeService creates a RecipeService. apiKey is called once per
// Generate call.
func NewRecipeService(content ContentGenerator, apiKey func() string, log logrus.FieldLogger) *RecipeService {
	return &RecipeService{
		content: content,
		apiKey:  apiKey,
		log:     log,
	}
}

// Generate asks the model for dishes made from ingredients. Output that is
// not a JSON object yields an empty result rather than an error.
func (s *RecipeService) Generate(ctx context.Context, ingredients string, loc locale.Locale) (model.RecipeResponse, error) {
	key := s.apiKey()
	if key == "" {
		return model.EmptyRecipeResponse(), ErrMissingAPIKey
	}

	text, err := s.content.GenerateContent(ctx, key, BuildPrompt(ingredients, loc))
	if err != nil {
		return model.EmptyRecipeResponse(), err
	}

	outcome := ParseRecipeResponse(text)
	if outcome.IsMalformed() {
		malformedOutputs.Inc()
		s.log.WithField("length", len(text)).Debug("model output was not recipe JSON, returning no dishes")
	}
	if n := outcome.Dropped(); n > 0 {
		s.log.WithField("dropped", n).Debug("skipped dish entries that did not decode")
	}

	return outcome.Response(), nil
}
