package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/dapur-ai/backend/internal/model"
)

const nasiGoreng = `{"dishes":[{"name":"Nasi Goreng","calories":450,"estimatedTimeMinutes":20,"ingredients":["nasi","telur"],"steps":["tumis","campur"],"macros":{"protein_g":12,"carbs_g":60,"fat_g":10}}]}`

func TestParseRecipeResponseRoundTrip(t *testing.T) {
	outcome := ParseRecipeResponse(nasiGoreng)
	require.False(t, outcome.IsMalformed())
	assert.NoError(t, outcome.Reason())

	out, err := json.Marshal(outcome.Response())
	require.NoError(t, err)
	assert.JSONEq(t, nasiGoreng, string(out))
}

func TestParseRecipeResponseMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"Here are some recipes: ...",
		`{"dishes":[{"name":"x"}`,
		`[1,2,3]`,
		`"just a string"`,
	} {
		outcome := ParseRecipeResponse(text)
		assert.True(t, outcome.IsMalformed(), text)
		assert.Error(t, outcome.Reason(), text)
		assert.Equal(t, model.EmptyRecipeResponse(), outcome.Response(), text)
	}
}

func TestParseRecipeResponseMissingDishes(t *testing.T) {
	for _, text := range []string{`{}`, `null`, `{"dishes":null}`, `{"dishes":"none"}`, `{"dishes":{"name":"x"}}`} {
		outcome := ParseRecipeResponse(text)
		assert.False(t, outcome.IsMalformed(), text)

		out, err := json.Marshal(outcome.Response())
		require.NoError(t, err)
		assert.JSONEq(t, `{"dishes":[]}`, string(out), text)
	}
}

func TestParseRecipeResponseLooseFields(t *testing.T) {
	text := `{"dishes":[
		{"name":"A","calories":450,"macros":{"protein_g":"12","carbs_g":"60 g","fat_g":null}},
		{"name":"B","calories":"450 kcal","estimatedTimeMinutes":"sekitar 20"},
		{"name":"C","calories":"lots"}
	]}`

	outcome := ParseRecipeResponse(text)
	require.False(t, outcome.IsMalformed())
	assert.Zero(t, outcome.Dropped())

	dishes := outcome.Response().Dishes
	require.Len(t, dishes, 3)
	assert.Equal(t, model.Macros{ProteinG: 12, CarbsG: 60}, dishes[0].Macros)
	assert.Equal(t, model.Count(450), dishes[1].Calories)
	assert.Equal(t, model.Count(0), dishes[1].EstimatedTimeMinutes)
	assert.Equal(t, model.Count(0), dishes[2].Calories)
	assert.Equal(t, []string{}, dishes[2].Steps)
}

func TestParseRecipeResponseDropsBadDishes(t *testing.T) {
	text := `{"dishes":[
		{"name":"Nasi Goreng","calories":450},
		{"name":["not","a","name"]},
		"Mie Goreng",
		null,
		{"name":"Telur Dadar","ingredients":["telur"]}
	]}`

	outcome := ParseRecipeResponse(text)
	require.False(t, outcome.IsMalformed())
	assert.Equal(t, 3, outcome.Dropped())

	dishes := outcome.Response().Dishes
	require.Len(t, dishes, 2)
	assert.Equal(t, "Nasi Goreng", dishes[0].Name)
	assert.Equal(t, "Telur Dadar", dishes[1].Name)
}
