package service

import (
	"context"

	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/model"
)

// ContentGenerator produces raw model text for a prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, apiKey, prompt string) (string, error)
}

// RecipeGenerator is the mediation contract used by the HTTP layer.
type RecipeGenerator interface {
	Generate(ctx context.Context, ingredients string, loc locale.Locale) (model.RecipeResponse, error)
}

var (
	_ ContentGenerator = (*GeminiClient)(nil)
	_ RecipeGenerator  = (*RecipeService)(nil)
)
