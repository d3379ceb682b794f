package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const userColumns = `id, username, email, password, created_at, updated_at`

// UserRepository persists users. Passwords are hashed here and nowhere else.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create hashes password and inserts a new user.
func (r *UserRepository) Create(ctx context.Context, username, email, password string) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + userColumns

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, username, email, hash)

	logQuery(query, []any{username, email, "***"}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns the user registered with email, or nil when there is none.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil members of patch. It returns nil without touching
// the database when patch is empty, and nil when no user has the given id.
func (r *UserRepository) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if patch.IsEmpty() {
		return nil, nil
	}

	var set assignments
	logged := []any{id}
	if patch.Username != nil {
		set.add("username", *patch.Username)
		logged = append(logged, *patch.Username)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email)
		logged = append(logged, *patch.Email)
	}
	if patch.Password != nil {
		hash, err := hashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		set.add("password", hash)
		logged = append(logged, "***")
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, set.clause(1), userColumns)

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, append([]any{id}, set.args...)...)

	logQuery(query, logged, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
