package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users. Implementations hash the password.
type UserWriter interface {
	Create(ctx context.Context, username, email, password string) (*models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, email string) (string, error)
}

// AuthService handles registration, login and the caller's profile.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a user and returns it together with a fresh token.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyRegistered
	}

	user, err := svc.writer.Create(ctx, username, email, password)
	if errors.Is(err, repositories.ErrDuplicate) {
		logger.Log.Infow("email registered concurrently", "email", email)
		return nil, "", ErrEmailAlreadyRegistered
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.ID, "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user by email and returns it with a token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.ID, "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Profile returns the user with the given id.
func (svc *AuthService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies patch to the user. An empty patch reports ErrUserNotFound,
// as does a user that no longer exists.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID int64, patch models.UserPatch) (*models.User, error) {
	user, err := svc.writer.Update(ctx, userID, patch)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrEmailAlreadyRegistered
	}
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
