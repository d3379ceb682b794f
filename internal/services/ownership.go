package services

import (
	"context"

	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

//go:generate mockgen -source=ownership.go -destination=mock_ownership_test.go -package=services

// RecipeFinder loads a single recipe.
type RecipeFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
}

// CanModify reports whether identity owns recipe. It is the only ownership rule:
// recipe updates, deletes and every ingredient mutation go through it.
func CanModify(recipe *models.Recipe, identity models.Identity) bool {
	return recipe != nil && recipe.UserID == identity.ID
}

// authorizeRecipe loads recipeID and checks that identity may modify it.
func authorizeRecipe(ctx context.Context, recipes RecipeFinder, recipeID int64, identity models.Identity) (*models.Recipe, error) {
	recipe, err := recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	if !CanModify(recipe, identity) {
		return nil, ErrForbidden
	}
	return recipe, nil
}
