// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/caiosouza15/seufirmino-awards/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AdminChecker reports whether a user may use the admin console.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// WithUserID stores the signed-in user's id in ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the id stored by RequireSession or RequireAdmin.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// RequireSession rejects requests without a valid bearer session (401).
func RequireSession(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Sign in required")
			return
		}
		userID, err := auth.ParseSession(token, secret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}
		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}

// RequireAdmin additionally requires an admin profile for the user (403).
func RequireAdmin(secret string, checker AdminChecker, next http.HandlerFunc) http.HandlerFunc {
	return RequireSession(secret, func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		isAdmin, err := checker.IsAdmin(r.Context(), userID)
		if err != nil {
			slog.Error("failed to check admin profile", "user_id", userID, "error", err)
			DetailedErrorResponse(w, http.StatusInternalServerError, "Could not verify admin access", err)
			return
		}
		if !isAdmin {
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	})
}
