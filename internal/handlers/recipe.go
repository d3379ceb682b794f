package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

//go:generate mockgen -source=recipe.go -destination=mock_recipe_test.go -package=handlers

// RecipeCreator creates recipes for the caller.
type RecipeCreator interface {
	Create(ctx context.Context, identity models.Identity, in models.NewRecipe) (*models.Recipe, error)
}

// RecipeLister lists the caller's recipes.
type RecipeLister interface {
	ListByOwner(ctx context.Context, userID int64) ([]models.Recipe, error)
}

// RecipeGetter loads a recipe with its ingredients.
type RecipeGetter interface {
	Get(ctx context.Context, id int64) (*models.RecipeDetail, error)
}

// RecipeUpdater changes a recipe owned by the caller.
type RecipeUpdater interface {
	Update(ctx context.Context, identity models.Identity, id int64, patch models.RecipePatch) (*models.Recipe, error)
}

// RecipeDeleter removes a recipe owned by the caller.
type RecipeDeleter interface {
	Delete(ctx context.Context, identity models.Identity, id int64) error
}

// RecipeSearcher finds recipes by text.
type RecipeSearcher interface {
	Search(ctx context.Context, q string) ([]models.Recipe, error)
}

// CreateRecipeRequest represents the JSON body for a new recipe
// swagger:model CreateRecipeRequest
type CreateRecipeRequest struct {
	// required: true
	// default: Tomato soup
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	// required: true
	Instructions string `json:"instructions" validate:"required"`
	// Minutes
	CookingTime int `json:"cooking_time"`
	Servings    int `json:"servings"`
	// One of easy, medium, hard
	// required: true
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

// UpdateRecipeRequest lists the recipe fields that may change. Omitted fields are kept.
// swagger:model UpdateRecipeRequest
type UpdateRecipeRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	CookingTime  *int    `json:"cooking_time,omitempty"`
	Servings     *int    `json:"servings,omitempty"`
	Difficulty   *string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

func (req UpdateRecipeRequest) patch() models.RecipePatch {
	p := models.RecipePatch{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
	}
	if req.Difficulty != nil {
		d := models.Difficulty(*req.Difficulty)
		p.Difficulty = &d
	}
	return p
}

// NewCreateRecipeHandler returns an HTTP handler that creates a recipe owned by the caller.
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param createRecipeRequest body handlers.CreateRecipeRequest true "Recipe"
// @Success 201 {object} models.Recipe
// @Failure 400 {object} handlers.ErrorResponse "Error creating recipe"
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Router /api/recipes [post]
// @Security BearerAuth
func NewCreateRecipeHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		var req CreateRecipeRequest
		if err := decodeAndValidate(r, &req); err != nil {
			badRequest(w, "Error creating recipe", err)
			return
		}

		recipe, err := svc.Create(r.Context(), caller, models.NewRecipe{
			Title:        req.Title,
			Description:  req.Description,
			Instructions: req.Instructions,
			CookingTime:  req.CookingTime,
			Servings:     req.Servings,
			Difficulty:   models.Difficulty(req.Difficulty),
		})
		if err != nil {
			badRequest(w, "Error creating recipe", err)
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewListRecipesHandler returns an HTTP handler listing the caller's recipes.
// @Summary List my recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} models.Recipe
// @Failure 400 {object} handlers.ErrorResponse "Error fetching recipes"
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Router /api/recipes [get]
// @Security BearerAuth
func NewListRecipesHandler(svc RecipeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		recipes, err := svc.ListByOwner(r.Context(), caller.ID)
		if err != nil {
			badRequest(w, "Error fetching recipes", err)
			return
		}

		writeJSON(w, http.StatusOK, recipes)
	}
}

// NewGetRecipeHandler returns an HTTP handler for a single recipe with its ingredients.
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.RecipeDetail
// @Failure 400 {object} handlers.ErrorResponse "Error fetching recipe"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /api/recipes/{id} [get]
func NewGetRecipeHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			badRequest(w, "Error fetching recipe", err)
			return
		}

		detail, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeError(w, http.StatusNotFound, "Recipe not found")
			default:
				badRequest(w, "Error fetching recipe", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

// NewUpdateRecipeHandler returns an HTTP handler for partial recipe updates.
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param updateRecipeRequest body handlers.UpdateRecipeRequest true "Fields to change"
// @Success 200 {object} models.Recipe
// @Failure 400 {object} handlers.ErrorResponse "Error updating recipe"
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Failure 403 {object} handlers.ErrorResponse "Not authorized to update this recipe"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /api/recipes/{id} [patch]
// @Security BearerAuth
func NewUpdateRecipeHandler(svc RecipeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			badRequest(w, "Error updating recipe", err)
			return
		}

		var req UpdateRecipeRequest
		if err := decodeAndValidate(r, &req); err != nil {
			badRequest(w, "Error updating recipe", err)
			return
		}

		recipe, err := svc.Update(r.Context(), caller, id, req.patch())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeError(w, http.StatusNotFound, "Recipe not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Not authorized to update this recipe")
			default:
				badRequest(w, "Error updating recipe", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewDeleteRecipeHandler returns an HTTP handler that deletes a recipe and its ingredients.
// @Summary Delete recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Error deleting recipe"
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Failure 403 {object} handlers.ErrorResponse "Not authorized to delete this recipe"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /api/recipes/{id} [delete]
// @Security BearerAuth
func NewDeleteRecipeHandler(svc RecipeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			badRequest(w, "Error deleting recipe", err)
			return
		}

		if err := svc.Delete(r.Context(), caller, id); err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeError(w, http.StatusNotFound, "Recipe not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Not authorized to delete this recipe")
			default:
				badRequest(w, "Error deleting recipe", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewSearchRecipesHandler returns an HTTP handler for substring search.
// @Summary Search recipes
// @Description Case-insensitive substring match on title, description and instructions
// @Tags recipes
// @Produce json
// @Param query path string true "Text to look for"
// @Success 200 {array} models.Recipe
// @Failure 400 {object} handlers.ErrorResponse "Error searching recipes"
// @Router /api/recipes/search/{query} [get]
func NewSearchRecipesHandler(svc RecipeSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := pathText(r, "query")
		if err != nil {
			badRequest(w, "Error searching recipes", err)
			return
		}

		recipes, err := svc.Search(r.Context(), q)
		if err != nil {
			badRequest(w, "Error searching recipes", err)
			return
		}

		writeJSON(w, http.StatusOK, recipes)
	}
}
