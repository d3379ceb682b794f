package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

//go:generate mockgen -source=recipe.go -destination=mock_recipe_test.go -package=services

// RecipeStore persists recipes.
type RecipeStore interface {
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Recipe, error)
	Search(ctx context.Context, q string) ([]models.Recipe, error)
	Create(ctx context.Context, in models.NewRecipe) (*models.Recipe, error)
	Update(ctx context.Context, id int64, patch models.RecipePatch) (*models.Recipe, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// IngredientStore persists ingredients.
type IngredientStore interface {
	ListByRecipeID(ctx context.Context, recipeID int64) ([]models.Ingredient, error)
	Create(ctx context.Context, in models.NewIngredient) (*models.Ingredient, error)
	Update(ctx context.Context, recipeID, id int64, patch models.IngredientPatch) (*models.Ingredient, error)
	Delete(ctx context.Context, recipeID, id int64) (bool, error)
	DeleteByRecipeID(ctx context.Context, recipeID int64) error
}

// RecipeCache caches recipe details.
type RecipeCache interface {
	Get(ctx context.Context, id int64) (*models.RecipeDetail, error)
	Set(ctx context.Context, detail *models.RecipeDetail) error
	Delete(ctx context.Context, id int64) error
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecipeService handles recipes and publishes their lifecycle events.
type RecipeService struct {
	recipes     RecipeStore
	ingredients IngredientStore
	tx          Transactor
	cache       RecipeCache
	kafkaWriter KafkaWriter
}

// NewRecipeService creates a new RecipeService. cache and kafkaWriter may be nil.
func NewRecipeService(
	recipes RecipeStore,
	ingredients IngredientStore,
	tx Transactor,
	cache RecipeCache,
	kafkaWriter KafkaWriter,
) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		ingredients: ingredients,
		tx:          tx,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a recipe owned by identity.
func (s *RecipeService) Create(ctx context.Context, identity models.Identity, in models.NewRecipe) (*models.Recipe, error) {
	if !in.Difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}
	in.UserID = identity.ID

	recipe, err := s.recipes.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create recipe", "user_id", identity.ID, "error", err)
		return nil, err
	}

	publishRecipeEvent(ctx, s.kafkaWriter, models.RecipeCreated, recipe.ID, identity.ID)
	return recipe, nil
}

// ListByOwner returns the recipes owned by userID, newest first.
func (s *RecipeService) ListByOwner(ctx context.Context, userID int64) ([]models.Recipe, error) {
	recipes, err := s.recipes.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "user_id", userID, "error", err)
		return nil, err
	}
	return recipes, nil
}

// Search returns recipes whose text contains q.
func (s *RecipeService) Search(ctx context.Context, q string) ([]models.Recipe, error) {
	recipes, err := s.recipes.Search(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to search recipes", "query", q, "error", err)
		return nil, err
	}
	return recipes, nil
}

// Get returns a recipe with its ingredients. Anyone may read a recipe.
func (s *RecipeService) Get(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	if s.cache != nil {
		detail, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to read recipe cache", "recipe_id", id, "error", err)
		} else if detail != nil {
			return detail, nil
		}
	}

	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe_id", id, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	ingredients, err := s.ingredients.ListByRecipeID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list ingredients", "recipe_id", id, "error", err)
		return nil, err
	}

	detail := &models.RecipeDetail{Recipe: *recipe, Ingredients: ingredients}

	if s.cache != nil {
		if err := s.cache.Set(ctx, detail); err != nil {
			logger.Log.Errorw("failed to cache recipe", "recipe_id", id, "error", err)
		}
	}

	return detail, nil
}

// Update applies patch to a recipe owned by identity.
func (s *RecipeService) Update(ctx context.Context, identity models.Identity, id int64, patch models.RecipePatch) (*models.Recipe, error) {
	if patch.Difficulty != nil && !patch.Difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}
	if _, err := authorizeRecipe(ctx, s.recipes, id, identity); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.Update(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update recipe", "recipe_id", id, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	invalidateRecipe(ctx, s.cache, id)
	publishRecipeEvent(ctx, s.kafkaWriter, models.RecipeUpdated, id, identity.ID)
	return recipe, nil
}

// Delete removes a recipe owned by identity together with its ingredients.
// Both deletes commit or roll back together.
func (s *RecipeService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if _, err := authorizeRecipe(ctx, s.recipes, id, identity); err != nil {
		return err
	}

	var deleted bool
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ingredients.DeleteByRecipeID(ctx, id); err != nil {
			return fmt.Errorf("delete ingredients: %w", err)
		}
		var err error
		deleted, err = s.recipes.Delete(ctx, id)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipe_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrRecipeNotFound
	}

	invalidateRecipe(ctx, s.cache, id)
	publishRecipeEvent(ctx, s.kafkaWriter, models.RecipeDeleted, id, identity.ID)
	return nil
}

func invalidateRecipe(ctx context.Context, cache RecipeCache, id int64) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to invalidate recipe cache", "recipe_id", id, "error", err)
	}
}
