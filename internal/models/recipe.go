package models

import (
	"time"
)

// Difficulty is the closed set of recipe difficulty levels.
type Difficulty string

// Supported difficulty levels
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the supported levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe represents a recipe row in the database
type Recipe struct {
	ID           int64      `json:"id" db:"id"`                     // Primary key
	Title        string     `json:"title" db:"title"`               // Recipe title
	Description  string     `json:"description" db:"description"`   // Short description
	Instructions string     `json:"instructions" db:"instructions"` // Preparation steps
	CookingTime  int        `json:"cooking_time" db:"cooking_time"` // Minutes
	Servings     int        `json:"servings" db:"servings"`         // Number of portions
	Difficulty   Difficulty `json:"difficulty" db:"difficulty"`     // easy, medium or hard
	UserID       int64      `json:"user_id" db:"user_id"`           // Owner
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// NewRecipe holds the columns supplied when a recipe is created.
type NewRecipe struct {
	Title        string
	Description  string
	Instructions string
	CookingTime  int
	Servings     int
	Difficulty   Difficulty
	UserID       int64
}

// RecipePatch lists the recipe columns that may be changed by a partial update.
type RecipePatch struct {
	Title        *string
	Description  *string
	Instructions *string
	CookingTime  *int
	Servings     *int
	Difficulty   *Difficulty
}

// IsEmpty reports whether the patch changes nothing.
func (p RecipePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Instructions == nil &&
		p.CookingTime == nil && p.Servings == nil && p.Difficulty == nil
}

// RecipeDetail is a recipe together with its ingredients.
type RecipeDetail struct {
	Recipe
	Ingredients []Ingredient `json:"ingredients"`
}
