package model

// DishSuggestion is a single recipe recommendation as returned by the model.
type DishSuggestion struct {
	Name                 string   `json:"name"`
	Calories             Count    `json:"calories"`
	EstimatedTimeMinutes Count    `json:"estimatedTimeMinutes"`
	Ingredients          []string `json:"ingredients"`
	Steps                []string `json:"steps"`
	Macros               Macros   `json:"macros"`
}

// Normalize returns a copy with every collection initialized.
func (d DishSuggestion) Normalize() DishSuggestion {
	if d.Ingredients == nil {
		d.Ingredients = []string{}
	}
	if d.Steps == nil {
		d.Steps = []string{}
	}
	return d
}

// RecipeResponse is the body returned by POST /api/generate.
type RecipeResponse struct {
	Dishes []DishSuggestion `json:"dishes"`
}

// EmptyRecipeResponse is the safe default used whenever no dishes are available.
func EmptyRecipeResponse() RecipeResponse {
	return RecipeResponse{Dishes: []DishSuggestion{}}
}

// Normalize returns a copy whose Dishes slice is never nil and whose dishes
// are themselves normalized.
func (r RecipeResponse) Normalize() RecipeResponse {
	dishes := make([]DishSuggestion, 0, len(r.Dishes))
	for _, d := range r.Dishes {
		dishes = append(dishes, d.Normalize())
	}
	return RecipeResponse{Dishes: dishes}
}
