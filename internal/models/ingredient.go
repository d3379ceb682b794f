package models

import (
	"time"
)

// Ingredient represents an ingredient row in the database
type Ingredient struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Ingredient name
	Amount    float64   `json:"amount" db:"amount"`         // Quantity
	Unit      string    `json:"unit" db:"unit"`             // Unit of measure, e.g. g, ml, tbsp
	RecipeID  int64     `json:"recipe_id" db:"recipe_id"`   // Owning recipe
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// NewIngredient holds the columns supplied when an ingredient is created.
type NewIngredient struct {
	Name     string
	Amount   float64
	Unit     string
	RecipeID int64
}

// IngredientPatch lists the ingredient columns that may be changed by a partial update.
type IngredientPatch struct {
	Name   *string
	Amount *float64
	Unit   *string
}

// IsEmpty reports whether the patch changes nothing.
func (p IngredientPatch) IsEmpty() bool {
	return p.Name == nil && p.Amount == nil && p.Unit == nil
}
