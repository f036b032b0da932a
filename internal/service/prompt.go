package service

import (
	"fmt"
	"strings"

	"github.com/pageza/dapur-ai/backend/internal/locale"
)

// DishCount is the number of dishes the model is asked for.
const DishCount = 3

// recipeSchema is embedded verbatim in every prompt.
const recipeSchema = `{
  "dishes": [
    {
      "name": "string",
      "calories": 0,
      "estimatedTimeMinutes": 0,
      "ingredients": ["string", "..."],
      "steps": ["string", "..."],
      "macros": { "protein_g": 0, "carbs_g": 0, "fat_g": 0 }
    },
    ...
  ]
}`

var promptTemplates = map[locale.Locale]string{
	locale.Indonesian: `Anda adalah asisten kuliner. Buatkan %d rekomendasi masakan berbasis bahan berikut: %s.
Wajib:
- Sesuaikan resep agar realistis dengan bahan yang disebut.
- Berikan estimasi kalori total per porsi (angka bulat).
- Sertakan estimasi waktu (menit), daftar bahan, langkah memasak ringkas (5-8 langkah), dan makro (protein, karbohidrat, lemak per porsi).
- Gunakan %s.
- Kembalikan hanya JSON (tanpa penjelasan lain).

Format JSON:
%s`,
	locale.English: `You are a culinary assistant. Suggest %d dishes based on the following ingredients: %s.
Requirements:
- Keep every recipe realistic for the ingredients given.
- Give the estimated total calories per portion (whole number).
- Include the estimated time (minutes), an ingredient list, short cooking steps (5-8 steps) and macros (protein, carbohydrates, fat per portion).
- Write in %s.
- Return JSON only (no other explanation).

JSON format:
%s`,
}

// BuildPrompt renders the instruction sent to the model for the given
// ingredients, in the language of loc.
func BuildPrompt(ingredients string, loc locale.Locale) string {
	tmpl, ok := promptTemplates[loc]
	if !ok {
		loc = locale.Default
		tmpl = promptTemplates[loc]
	}
	return strings.TrimSpace(fmt.Sprintf(tmpl,
		DishCount,
		strings.TrimSpace(ingredients),
		locale.For(loc).PromptLanguage,
		recipeSchema,
	))
}
