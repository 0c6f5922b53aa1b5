// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/caiosouza15/seufirmino-awards/auth"
	"github.com/caiosouza15/seufirmino-awards/cliparse"
	"github.com/caiosouza15/seufirmino-awards/middleware"
	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/store"
)

type AuthHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAuthHandler(st *store.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

// NormalizeEmail is applied to emails on login and on admin bootstrap.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (h *AuthHandler) authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := h.store.UserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return models.User{}, models.ErrInvalidCredentials
	}
	return user, nil
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.authenticate(r.Context(), req.Email, req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		slog.Info("login rejected", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to load user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not sign in")
		return
	}

	isAdmin, err := h.store.IsAdmin(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to check admin profile", "user_id", user.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not sign in")
		return
	}

	token, err := auth.IssueSession(user.ID, h.cfg.SessionSecret, h.cfg.SessionTTL, time.Now())
	if err != nil {
		slog.Error("failed to issue session", "user_id", user.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not sign in")
		return
	}

	slog.Info("user signed in", "user_id", user.ID, "admin", isAdmin)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:   token,
		User:    user,
		IsAdmin: isAdmin,
	})
}

// Me handles GET /auth/me
// Must be wrapped in middleware.RequireSession.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in required")
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if errors.Is(err, models.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Account no longer exists")
		return
	}
	if err != nil {
		slog.Error("failed to load user", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not load account")
		return
	}

	isAdmin, err := h.store.IsAdmin(r.Context(), userID)
	if err != nil {
		slog.Error("failed to check admin profile", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not load account")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{User: user, IsAdmin: isAdmin})
}
