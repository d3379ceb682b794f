package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

//go:generate mockgen -source=profile.go -destination=mock_profile_test.go -package=handlers

// ProfileGetter loads the caller's user record.
type ProfileGetter interface {
	Profile(ctx context.Context, userID int64) (*models.User, error)
}

// ProfileUpdater changes the caller's user record.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, patch models.UserPatch) (*models.User, error)
}

// UpdateProfileRequest lists the user fields that may change. Omitted fields are kept.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// NewGetProfileHandler returns an HTTP handler for the caller's profile.
// @Summary Get profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/auth/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		user, err := svc.Profile(r.Context(), caller.ID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				badRequest(w, "Error fetching profile", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile updates.
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Please authenticate."
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/auth/profile [patch]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := decodeAndValidate(r, &req); err != nil {
			badRequest(w, "Error updating profile", err)
			return
		}

		patch := models.UserPatch{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		}

		user, err := svc.UpdateProfile(r.Context(), caller.ID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				writeError(w, http.StatusBadRequest, "Email already registered")
			default:
				badRequest(w, "Error updating profile", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
