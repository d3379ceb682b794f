package services

import "errors"

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrRecipeNotFound         = errors.New("recipe not found")
	ErrIngredientNotFound     = errors.New("ingredient not found")
	ErrForbidden              = errors.New("not authorized to modify this recipe")
	ErrInvalidDifficulty      = errors.New("difficulty must be easy, medium or hard")
)
