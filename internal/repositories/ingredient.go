package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

const ingredientColumns = `id, name, amount, unit, recipe_id, created_at, updated_at`

// IngredientRepository persists the ingredients attached to recipes.
type IngredientRepository struct {
	db *sqlx.DB
}

// NewIngredientRepository creates a new IngredientRepository.
func NewIngredientRepository(db *sqlx.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create attaches a new ingredient to in.RecipeID.
func (r *IngredientRepository) Create(ctx context.Context, in models.NewIngredient) (*models.Ingredient, error) {
	query := `
		INSERT INTO ingredients (name, amount, unit, recipe_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + ingredientColumns

	args := []any{in.Name, in.Amount, in.Unit, in.RecipeID}

	var ingredient models.Ingredient
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &ingredient, query, args...)

	logQuery(query, args, ingredient.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &ingredient, nil
}

// ListByRecipeID returns the ingredients of recipeID ordered by name.
func (r *IngredientRepository) ListByRecipeID(ctx context.Context, recipeID int64) ([]models.Ingredient, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE recipe_id = $1
		ORDER BY name, id`

	ingredients := []models.Ingredient{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &ingredients, query, recipeID)

	logQuery(query, []any{recipeID}, len(ingredients), err)

	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Update applies patch to the ingredient id of recipeID. It returns nil when
// patch is empty or the ingredient does not belong to recipeID.
func (r *IngredientRepository) Update(ctx context.Context, recipeID, id int64, patch models.IngredientPatch) (*models.Ingredient, error) {
	if patch.IsEmpty() {
		return nil, nil
	}

	var set assignments
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Amount != nil {
		set.add("amount", *patch.Amount)
	}
	if patch.Unit != nil {
		set.add("unit", *patch.Unit)
	}

	query := fmt.Sprintf(`
		UPDATE ingredients
		SET %s, updated_at = NOW()
		WHERE id = $1 AND recipe_id = $2
		RETURNING %s`, set.clause(2), ingredientColumns)

	args := append([]any{id, recipeID}, set.args...)

	var ingredient models.Ingredient
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &ingredient, query, args...)

	logQuery(query, args, ingredient.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Delete removes the ingredient id of recipeID and reports whether it existed.
func (r *IngredientRepository) Delete(ctx context.Context, recipeID, id int64) (bool, error) {
	query := `DELETE FROM ingredients WHERE id = $1 AND recipe_id = $2`

	n, err := r.exec(ctx, query, id, recipeID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteByRecipeID removes every ingredient of recipeID.
func (r *IngredientRepository) DeleteByRecipeID(ctx context.Context, recipeID int64) error {
	query := `DELETE FROM ingredients WHERE recipe_id = $1`

	_, err := r.exec(ctx, query, recipeID)
	return err
}

func (r *IngredientRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logQuery(query, args, nil, err)
		return 0, err
	}

	n, err := res.RowsAffected()

	logQuery(query, args, n, err)

	return n, err
}
