package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/migrations"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/repositories"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var errNoDatabaseURL = errors.New("database url is required (--database-url or DATABASE_URL)")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the recipe book database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.env",
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:  "database-url",
				Usage: "PostgreSQL connection string, defaults to DATABASE_URL",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			_ = godotenv.Load(cmd.String("config"))
			return ctx, logger.Initialize(cmd.String("log-level"), "")
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply pending schema migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withDB(ctx, cmd, func(db *sqlx.DB) error {
						if err := migrations.Up(ctx, db.DB); err != nil {
							return fmt.Errorf("apply migrations: %w", err)
						}
						logger.Log.Info("Schema is up to date")
						return nil
					})
				},
			},
			{
				Name:  "seed",
				Usage: "Apply migrations and insert demo data",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withDB(ctx, cmd, func(db *sqlx.DB) error {
						if err := migrations.Up(ctx, db.DB); err != nil {
							return fmt.Errorf("apply migrations: %w", err)
						}
						return seed(ctx,
							repositories.NewUserRepository(db),
							repositories.NewRecipeRepository(db),
							repositories.NewIngredientRepository(db),
						)
					})
				},
			},
		},
	}
}

// withDB opens the configured database for the duration of fn.
func withDB(ctx context.Context, cmd *cli.Command, fn func(db *sqlx.DB) error) error {
	dsn := cmd.String("database-url")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return errNoDatabaseURL
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	return fn(db)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, username, email, password string) (*models.User, error)
}

type recipeStore interface {
	Create(ctx context.Context, in models.NewRecipe) (*models.Recipe, error)
}

type ingredientStore interface {
	Create(ctx context.Context, in models.NewIngredient) (*models.Ingredient, error)
}

type seedRecipe struct {
	recipe      models.NewRecipe
	ingredients []models.NewIngredient
}

const (
	demoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

var demoRecipes = []seedRecipe{
	{
		recipe: models.NewRecipe{
			Title:        "Tomato Soup",
			Description:  "A warm and simple soup",
			Instructions: "Chop the tomatoes and onion. Simmer with stock for 20 minutes, then blend.",
			CookingTime:  30,
			Servings:     4,
			Difficulty:   models.DifficultyEasy,
		},
		ingredients: []models.NewIngredient{
			{Name: "Tomato", Amount: 6, Unit: "pcs"},
			{Name: "Onion", Amount: 1, Unit: "pcs"},
			{Name: "Vegetable stock", Amount: 500, Unit: "ml"},
		},
	},
	{
		recipe: models.NewRecipe{
			Title:        "Pancakes",
			Description:  "Fluffy breakfast pancakes",
			Instructions: "Whisk everything into a smooth batter and fry in a hot pan.",
			CookingTime:  20,
			Servings:     2,
			Difficulty:   models.DifficultyMedium,
		},
		ingredients: []models.NewIngredient{
			{Name: "Flour", Amount: 200, Unit: "g"},
			{Name: "Milk", Amount: 300, Unit: "ml"},
			{Name: "Egg", Amount: 2, Unit: "pcs"},
		},
	},
}

// seed inserts the demo user with its recipes. It does nothing when the demo user exists.
func seed(ctx context.Context, users userStore, recipes recipeStore, ingredients ingredientStore) error {
	existing, err := users.GetByEmail(ctx, demoEmail)
	if err != nil {
		return fmt.Errorf("look up demo user: %w", err)
	}
	if existing != nil {
		logger.Log.Infow("Demo data already present", "user_id", existing.ID)
		return nil
	}

	user, err := users.Create(ctx, demoUsername, demoEmail, demoPassword)
	if err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}

	for _, sr := range demoRecipes {
		in := sr.recipe
		in.UserID = user.ID

		recipe, err := recipes.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("create recipe %q: %w", in.Title, err)
		}

		for _, ing := range sr.ingredients {
			ing.RecipeID = recipe.ID
			if _, err := ingredients.Create(ctx, ing); err != nil {
				return fmt.Errorf("add %q to %q: %w", ing.Name, in.Title, err)
			}
		}
	}

	logger.Log.Infow("Demo data inserted", "user_id", user.ID, "recipes", len(demoRecipes))
	return nil
}
