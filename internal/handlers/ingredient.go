package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

//go:generate mockgen -source=ingredient.go -destination=mock_ingredient_test.go -package=handlers

// IngredientLister lists the ingredients of a recipe.
type IngredientLister interface {
	List(ctx context.Context, recipeID int64) ([]models.Ingredient, error)
}

// IngredientAdder attaches ingredients to the caller's recipes.
type IngredientAdder interface {
	Add(ctx context.Context, identity models.Identity, recipeID int64, in models.NewIngredient) (*models.Ingredient, error)
}

// IngredientUpdater changes ingredients of the caller's recipes.
type IngredientUpdater interface {
	Update(ctx context.Context, identity models.Identity, recipeID, id int64, patch models.IngredientPatch) (*models.Ingredient, error)
}

// IngredientDeleter removes ingredients of the caller's recipes.
type IngredientDeleter interface {
	Delete(ctx context.Context, identity models.Identity, recipeID, id int64) error
}

// AddIngredientRequest represents the JSON body for a new ingredient
// swagger:model AddIngredientRequest
type AddIngredientRequest struct {
	// required: true
	// default: Tomato
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount"`
	// default: pcs
	Unit string `json:"unit"`
}

// UpdateIngredientRequest lists the ingredient fields that may change. Omitted fields are kept.
// swagger:model UpdateIngredientRequest
type UpdateIngredientRequest struct {
	Name   *string  `json:"name,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Unit   *string  `json:"unit,omitempty"`
}

const modifyForbidden = "Not authorized to modify this recipe"

// NewListIngredientsHandler returns an HTTP handler listing a recipe's ingredients.
// @Summary List ingredients
// @Tags ingredients
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {array} models.Ingredient
// @Failure 400 {object} handlers.ErrorResponse "Error fetching ingredients"
// @Router /api/recipes/{id}/ingredients [get]
func NewListIngredientsHandler(svc IngredientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, "id")
		if err != nil {
			badRequest(w, "Error fetching ingredients", err)
			return
		}

		ingredients, err := svc.List(r.Context(), recipeID)
		if err != nil {
			badRequest(w, "Error fetching ingredients", err)
			return
		}

		writeJSON(w, http.StatusOK, ingredients)
	}
}

// NewAddIngredientHandler returns an HTTP handler adding an ingredient to the caller's recipe.
// @Summary Add ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param addIngredientRequest body handlers.AddIngredientRequest true "Ingredient"
// @Success 201 {object} models.Ingredient
// @Failure 400 {object} handlers.ErrorResponse "Error adding ingredient"
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Failure 403 {object} handlers.ErrorResponse "Not authorized to modify this recipe"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /api/recipes/{id}/ingredients [post]
// @Security BearerAuth
func NewAddIngredientHandler(svc IngredientAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		recipeID, err := pathID(r, "id")
		if err != nil {
			badRequest(w, "Error adding ingredient", err)
			return
		}

		var req AddIngredientRequest
		if err := decodeAndValidate(r, &req); err != nil {
			badRequest(w, "Error adding ingredient", err)
			return
		}

		ingredient, err := svc.Add(r.Context(), caller, recipeID, models.NewIngredient{
			Name:   req.Name,
			Amount: req.Amount,
			Unit:   req.Unit,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeError(w, http.StatusNotFound, "Recipe not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, modifyForbidden)
			default:
				badRequest(w, "Error adding ingredient", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, ingredient)
	}
}

// NewUpdateIngredientHandler returns an HTTP handler for partial ingredient updates.
// @Summary Update ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param ingredientID path int true "Ingredient ID"
// @Param updateIngredientRequest body handlers.UpdateIngredientRequest true "Fields to change"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} handlers.ErrorResponse "Error updating ingredient"
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Failure 403 {object} handlers.ErrorResponse "Not authorized to modify this recipe"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found / Ingredient not found"
// @Router /api/recipes/{id}/ingredients/{ingredientID} [patch]
// @Security BearerAuth
func NewUpdateIngredientHandler(svc IngredientUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		recipeID, err := pathID(r, "id")
		if err != nil {
			badRequest(w, "Error updating ingredient", err)
			return
		}
		id, err := pathID(r, "ingredientID")
		if err != nil {
			badRequest(w, "Error updating ingredient", err)
			return
		}

		var req UpdateIngredientRequest
		if err := decodeAndValidate(r, &req); err != nil {
			badRequest(w, "Error updating ingredient", err)
			return
		}

		ingredient, err := svc.Update(r.Context(), caller, recipeID, id, models.IngredientPatch{
			Name:   req.Name,
			Amount: req.Amount,
			Unit:   req.Unit,
		})
		if err != nil {
			writeIngredientError(w, "Error updating ingredient", err)
			return
		}

		writeJSON(w, http.StatusOK, ingredient)
	}
}

// NewDeleteIngredientHandler returns an HTTP handler removing an ingredient from the caller's recipe.
// @Summary Delete ingredient
// @Tags ingredients
// @Param id path int true "Recipe ID"
// @Param ingredientID path int true "Ingredient ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Error deleting ingredient"
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Failure 403 {object} handlers.ErrorResponse "Not authorized to modify this recipe"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found / Ingredient not found"
// @Router /api/recipes/{id}/ingredients/{ingredientID} [delete]
// @Security BearerAuth
func NewDeleteIngredientHandler(svc IngredientDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		recipeID, err := pathID(r, "id")
		if err != nil {
			badRequest(w, "Error deleting ingredient", err)
			return
		}
		id, err := pathID(r, "ingredientID")
		if err != nil {
			badRequest(w, "Error deleting ingredient", err)
			return
		}

		if err := svc.Delete(r.Context(), caller, recipeID, id); err != nil {
			writeIngredientError(w, "Error deleting ingredient", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeIngredientError(w http.ResponseWriter, fallback string, err error) {
	switch {
	case errors.Is(err, services.ErrRecipeNotFound):
		writeError(w, http.StatusNotFound, "Recipe not found")
	case errors.Is(err, services.ErrIngredientNotFound):
		writeError(w, http.StatusNotFound, "Ingredient not found")
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, modifyForbidden)
	default:
		badRequest(w, fallback, err)
	}
}
