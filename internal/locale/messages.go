package locale

// Messages is the text catalog for one locale.
type Messages struct {
	// Server responses.
	InvalidIngredients string
	MissingAPIKey      string

	// Presenter text.
	NoResultsYet     string
	FillIngredients  string
	Generating       string
	Done             string
	NothingReturned  string
	ErrorPrefix      string
	ServerError      string
	CaloriesUnit     string
	MinutesUnit      string
	ProteinLabel     string
	CarbsLabel       string
	FatLabel         string
	IngredientsTitle string
	StepsTitle       string
	GenerateButton   string
	InputPlaceholder string
	PageTitle        string

	// Prompt fragments.
	PromptLanguage string
}

var catalog = map[Locale]Messages{
	Indonesian: {
		InvalidIngredients: `Field "ingredients" harus berupa string (pisahkan dengan koma).`,
		MissingAPIKey:      "Server belum dikonfigurasi GEMINI_API_KEY.",
		NoResultsYet:       "Belum ada hasil. Coba generate resep!",
		FillIngredients:    "Mohon isi bahan terlebih dahulu.",
		Generating:         "Menghasilkan resep...",
		Done:               "Selesai ✅",
		NothingReturned:    "AI tidak mengembalikan resep. Coba ubah bahan.",
		ErrorPrefix:        "Terjadi kesalahan: ",
		ServerError:        "Server error: %d",
		CaloriesUnit:       "kkal",
		MinutesUnit:        "menit",
		ProteinLabel:       "Protein",
		CarbsLabel:         "Karb",
		FatLabel:           "Lemak",
		IngredientsTitle:   "Bahan:",
		StepsTitle:         "Langkah:",
		GenerateButton:     "Generate Resep",
		InputPlaceholder:   "contoh: nasi, telur, bawang putih, kecap",
		PageTitle:          "Dapur AI",
		PromptLanguage:     "bahasa Indonesia",
	},
	English: {
		InvalidIngredients: `Field "ingredients" must be a string (comma-separated).`,
		MissingAPIKey:      "Server is not configured with GEMINI_API_KEY.",
		NoResultsYet:       "No results yet. Try generating some recipes!",
		FillIngredients:    "Please fill in the ingredients first.",
		Generating:         "Generating recipes...",
		Done:               "Done ✅",
		NothingReturned:    "The AI returned no recipes. Try different ingredients.",
		ErrorPrefix:        "An error occurred: ",
		ServerError:        "Server error: %d",
		CaloriesUnit:       "kcal",
		MinutesUnit:        "min",
		ProteinLabel:       "Protein",
		CarbsLabel:         "Carbs",
		FatLabel:           "Fat",
		IngredientsTitle:   "Ingredients:",
		StepsTitle:         "Steps:",
		GenerateButton:     "Generate Recipes",
		InputPlaceholder:   "e.g. rice, egg, garlic, soy sauce",
		PageTitle:          "Dapur AI",
		PromptLanguage:     "English",
	},
}

// For returns the catalog for l, falling back to the default locale.
func For(l Locale) Messages {
	if m, ok := catalog[l]; ok {
		return m
	}
	return catalog[Default]
}
