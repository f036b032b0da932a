package model

// Macros represents the per-portion macronutrient breakdown of a dish.
type Macros struct {
	ProteinG Amount `json:"protein_g"`
	CarbsG   Amount `json:"carbs_g"`
	FatG     Amount `json:"fat_g"`
}
