package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Akshadkurundwade07/shopflow/internal/auth"
	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"go.uber.org/zap"
)

const (
	RoleOwner = "owner"

	msgDuplicateEmail     = "User with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
)

// RegisterAccount creates a user and seeds the default categories, plus the sample
// catalog when SeedSampleProducts is set. The request must already be validated.
func (s *Server) RegisterAccount(ctx context.Context, req SignupRequest) (models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Users.Create(ctx, models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		ShopName:     strings.TrimSpace(req.ShopName),
		PasswordHash: hash,
		Role:         RoleOwner,
	})
	if err != nil {
		return models.User{}, err
	}

	if err := repo.SeedCatalog(ctx, s.Categories, s.Products, user.ID, s.SeedSampleProducts); err != nil {
		// Drop the half-seeded account.
		if delErr := s.Users.Delete(context.WithoutCancel(ctx), user.ID); delErr != nil {
			s.log().Error("could not remove account after failed seeding",
				zap.String("user_id", user.ID), zap.Error(delErr))
		}
		return models.User{}, fmt.Errorf("seed catalog: %w", err)
	}
	return user, nil
}

func (s *Server) issue(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, claims, err := s.Issuer.Issue(user)
	if err != nil {
		s.internalError(w, r, "could not generate token", err)
		return
	}
	writeJSON(w, status, AuthResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      toUserResponse(user),
	})
}

// Signup godoc
// @Summary Register a new shop owner and return a JWT token
// @Description Passwords need at least 6 characters. New accounts get the default categories.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body SignupRequest true "New account"
// @Success 201 {object} AuthResult
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "User exists"
// @Router /auth/signup [post]
func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateSignup(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user, err := s.RegisterAccount(r.Context(), req)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			http.Error(w, msgDuplicateEmail, http.StatusConflict)
			return
		}
		s.internalError(w, r, "failed to register user", err)
		return
	}

	s.log().Info("user registered", zap.String("user_id", user.ID))
	s.issue(w, r, user, http.StatusCreated)
}

// Login godoc
// @Summary Authenticate with email and password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} AuthResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Invalid email or password"
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := s.Users.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		s.internalError(w, r, "could not fetch user", err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		http.Error(w, msgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	s.issue(w, r, user, http.StatusOK)
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResult
// @Failure 401 {string} string "Unauthorized"
// @Router /auth/logout [post]
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}
	if err := s.Sessions.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		s.internalError(w, r, "could not revoke token", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResult{Message: "logged out"})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 404 {string} string "User not found"
// @Router /auth/me [get]
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user, err := s.Users.GetByID(r.Context(), ownerID(r))
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, "could not fetch user", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateProfile godoc
// @Summary Update name and shop name
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Fields to change"
// @Success 200 {object} UserResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "User not found"
// @Router /auth/me [patch]
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	errs := []ProductValidationError{}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name cannot be empty"})
	}
	if req.ShopName != nil && strings.TrimSpace(*req.ShopName) == "" {
		errs = append(errs, ProductValidationError{Field: "ShopName", Description: "Shop name cannot be empty"})
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user, err := s.Users.Update(r.Context(), ownerID(r), models.UserPatch{Name: trimmed(req.Name), ShopName: trimmed(req.ShopName)})
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, "could not update profile", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// ChangePassword godoc
// @Summary Change the account password
// @Description The current password must be supplied. Existing tokens stay valid.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwords body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResult
// @Failure 400 {string} string "Invalid input"
// @Failure 403 {string} string "Current password is incorrect"
// @Router /auth/password [post]
func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if len(req.NewPassword) < auth.MinPasswordLength {
		writeValidationErrors(w, []ProductValidationError{
			{Field: "NewPassword", Description: "Password must be at least 6 characters"},
		})
		return
	}

	user, err := s.Users.GetByID(r.Context(), ownerID(r))
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, "could not fetch user", err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		http.Error(w, "Current password is incorrect", http.StatusForbidden)
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.internalError(w, r, "failed to hash password", err)
		return
	}
	if _, err := s.Users.Update(r.Context(), user.ID, models.UserPatch{PasswordHash: &hash}); err != nil {
		s.internalError(w, r, "could not update password", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResult{Message: "password updated"})
}
