package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/model"
)

// MockRecipeGenerator is a mock implementation of the recipe generator
type MockRecipeGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockRecipeGenerator) Generate(ctx context.Context, ingredients string, loc locale.Locale) (model.RecipeResponse, error) {
	args := m.Called(ctx, ingredients, loc)
	return args.Get(0).(model.RecipeResponse), args.Error(1)
}

// MockContentGenerator is a mock implementation of the upstream model client
type MockContentGenerator struct {
	mock.Mock
}

// GenerateContent mocks the GenerateContent method
func (m *MockContentGenerator) GenerateContent(ctx context.Context, apiKey, prompt string) (string, error) {
	args := m.Called(ctx, apiKey, prompt)
	return args.String(0), args.Error(1)
}
