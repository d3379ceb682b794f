package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-recipe-book/internal/docs"
	"github.com/sbilibin2017/gw-recipe-book/internal/handlers"
	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
)

// Handlers holds one handler per endpoint together with the auth gate for protected routes.
type Handlers struct {
	Auth func(http.Handler) http.Handler

	Register      http.HandlerFunc
	Login         http.HandlerFunc
	GetProfile    http.HandlerFunc
	UpdateProfile http.HandlerFunc

	CreateRecipe  http.HandlerFunc
	ListRecipes   http.HandlerFunc
	GetRecipe     http.HandlerFunc
	UpdateRecipe  http.HandlerFunc
	DeleteRecipe  http.HandlerFunc
	SearchRecipes http.HandlerFunc

	ListIngredients  http.HandlerFunc
	AddIngredient    http.HandlerFunc
	UpdateIngredient http.HandlerFunc
	DeleteIngredient http.HandlerFunc
}

// New builds the application router.
func New(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.MetricsMiddleware)

	r.NotFound(handlers.NewNotFoundHandler())
	r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

	r.Get("/", handlers.NewHealthHandler())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Auth)
			r.Get("/profile", h.GetProfile)
			r.Patch("/profile", h.UpdateProfile)
		})
	})

	r.Route("/api/recipes", func(r chi.Router) {
		r.Get("/search/{query}", h.SearchRecipes)
		r.Get("/{id}", h.GetRecipe)
		r.Get("/{id}/ingredients", h.ListIngredients)

		r.Group(func(r chi.Router) {
			r.Use(h.Auth)
			r.Post("/", h.CreateRecipe)
			r.Get("/", h.ListRecipes)
			r.Patch("/{id}", h.UpdateRecipe)
			r.Delete("/{id}", h.DeleteRecipe)
			r.Post("/{id}/ingredients", h.AddIngredient)
			r.Patch("/{id}/ingredients/{ingredientID}", h.UpdateIngredient)
			r.Delete("/{id}/ingredients/{ingredientID}", h.DeleteIngredient)
		})
	})

	return r
}
