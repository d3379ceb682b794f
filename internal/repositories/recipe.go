package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

const recipeColumns = `id, title, description, instructions, cooking_time, servings, difficulty, user_id, created_at, updated_at`

// RecipeRepository persists recipes.
type RecipeRepository struct {
	db *sqlx.DB
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *sqlx.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts a recipe owned by in.UserID.
func (r *RecipeRepository) Create(ctx context.Context, in models.NewRecipe) (*models.Recipe, error) {
	query := `
		INSERT INTO recipes (title, description, instructions, cooking_time, servings, difficulty, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + recipeColumns

	args := []any{in.Title, in.Description, in.Instructions, in.CookingTime, in.Servings, string(in.Difficulty), in.UserID}

	var recipe models.Recipe
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &recipe, query, args...)

	logQuery(query, args, recipe.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &recipe, nil
}

// GetByID returns the recipe with the given id, or nil when there is none.
func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

	var recipe models.Recipe
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &recipe, query, id)

	logQuery(query, []any{id}, recipe.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListByUserID returns the recipes owned by userID, newest first.
func (r *RecipeRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, userID)
}

// Search returns recipes whose title, description or instructions contain q, ignoring case.
// Wildcard characters in q are matched literally.
func (r *RecipeRepository) Search(ctx context.Context, q string) ([]models.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE title ILIKE $1 ESCAPE '\'
			OR description ILIKE $1 ESCAPE '\'
			OR instructions ILIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, "%"+escapeLike(q)+"%")
}

func (r *RecipeRepository) list(ctx context.Context, query string, arg any) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &recipes, query, arg)

	logQuery(query, []any{arg}, len(recipes), err)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update applies the non-nil members of patch. It returns nil without touching
// the database when patch is empty, and nil when no recipe has the given id.
func (r *RecipeRepository) Update(ctx context.Context, id int64, patch models.RecipePatch) (*models.Recipe, error) {
	if patch.IsEmpty() {
		return nil, nil
	}

	var set assignments
	if patch.Title != nil {
		set.add("title", *patch.Title)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Instructions != nil {
		set.add("instructions", *patch.Instructions)
	}
	if patch.CookingTime != nil {
		set.add("cooking_time", *patch.CookingTime)
	}
	if patch.Servings != nil {
		set.add("servings", *patch.Servings)
	}
	if patch.Difficulty != nil {
		set.add("difficulty", string(*patch.Difficulty))
	}

	query := fmt.Sprintf(`
		UPDATE recipes
		SET %s, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, set.clause(1), recipeColumns)

	args := append([]any{id}, set.args...)

	var recipe models.Recipe
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &recipe, query, args...)

	logQuery(query, args, recipe.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Delete removes the recipe with the given id and reports whether a row was removed.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM recipes WHERE id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		logQuery(query, []any{id}, nil, err)
		return false, err
	}

	n, err := res.RowsAffected()

	logQuery(query, []any{id}, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
