package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/jwt"
	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserFinder loads the user a token was issued to.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

const unauthorizedMessage = "Please authenticate."

// AuthMiddleware returns a middleware that verifies the bearer token, loads its user
// and attaches the caller's identity to the request context.
func AuthMiddleware(tokener Tokener, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil || user == nil {
				logger.Log.Infow("authorization failed", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, user.Identity())))
		})
	}
}
