package services

import (
	"context"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// IngredientService handles the ingredients of a recipe.
type IngredientService struct {
	recipes     RecipeFinder
	ingredients IngredientStore
	cache       RecipeCache
}

// NewIngredientService creates a new IngredientService. cache may be nil.
func NewIngredientService(recipes RecipeFinder, ingredients IngredientStore, cache RecipeCache) *IngredientService {
	return &IngredientService{
		recipes:     recipes,
		ingredients: ingredients,
		cache:       cache,
	}
}

// List returns the ingredients of recipeID ordered by name.
func (s *IngredientService) List(ctx context.Context, recipeID int64) ([]models.Ingredient, error) {
	ingredients, err := s.ingredients.ListByRecipeID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to list ingredients", "recipe_id", recipeID, "error", err)
		return nil, err
	}
	return ingredients, nil
}

// Add attaches an ingredient to a recipe owned by identity.
func (s *IngredientService) Add(ctx context.Context, identity models.Identity, recipeID int64, in models.NewIngredient) (*models.Ingredient, error) {
	if _, err := authorizeRecipe(ctx, s.recipes, recipeID, identity); err != nil {
		return nil, err
	}

	in.RecipeID = recipeID
	ingredient, err := s.ingredients.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to add ingredient", "recipe_id", recipeID, "error", err)
		return nil, err
	}

	invalidateRecipe(ctx, s.cache, recipeID)
	return ingredient, nil
}

// Update changes an ingredient of a recipe owned by identity.
func (s *IngredientService) Update(ctx context.Context, identity models.Identity, recipeID, id int64, patch models.IngredientPatch) (*models.Ingredient, error) {
	if _, err := authorizeRecipe(ctx, s.recipes, recipeID, identity); err != nil {
		return nil, err
	}

	ingredient, err := s.ingredients.Update(ctx, recipeID, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update ingredient", "recipe_id", recipeID, "ingredient_id", id, "error", err)
		return nil, err
	}
	if ingredient == nil {
		return nil, ErrIngredientNotFound
	}

	invalidateRecipe(ctx, s.cache, recipeID)
	return ingredient, nil
}

// Delete removes an ingredient of a recipe owned by identity.
func (s *IngredientService) Delete(ctx context.Context, identity models.Identity, recipeID, id int64) error {
	if _, err := authorizeRecipe(ctx, s.recipes, recipeID, identity); err != nil {
		return err
	}

	deleted, err := s.ingredients.Delete(ctx, recipeID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete ingredient", "recipe_id", recipeID, "ingredient_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrIngredientNotFound
	}

	invalidateRecipe(ctx, s.cache, recipeID)
	return nil
}
