// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/caiosouza15/seufirmino-awards/cliparse"
	"github.com/caiosouza15/seufirmino-awards/handlers"
	"github.com/caiosouza15/seufirmino-awards/images"
	"github.com/caiosouza15/seufirmino-awards/middleware"
	"github.com/caiosouza15/seufirmino-awards/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config, bucket images.Bucket) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)
	authHandler := handlers.NewAuthHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg, bucket)

	// admin wraps a handler with logging, a bearer session and an admin profile check
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.SessionSecret, st, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting (public, token in the request)
	mux.HandleFunc("GET /vote", middleware.WithLogging(voteHandler.GetBallot))
	mux.HandleFunc("POST /vote/select", middleware.WithLogging(voteHandler.SelectNominee))
	mux.HandleFunc("POST /vote/confirm", middleware.WithLogging(voteHandler.ConfirmVote))

	// Results (public, sealed until reveal)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))

	// Nominee images from the local bucket
	if dir, ok := bucket.(*images.DirBucket); ok {
		mux.HandleFunc("GET /images/{name}", dir.ServeImage)
	}

	// Admin sign-in
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(middleware.RequireSession(cfg.SessionSecret, authHandler.Me)))

	// Admin console
	mux.HandleFunc("GET /admin/capabilities", admin(adminHandler.Capabilities))

	mux.HandleFunc("GET /admin/contests", admin(adminHandler.ListContests))
	mux.HandleFunc("POST /admin/contests", admin(adminHandler.CreateContest))
	mux.HandleFunc("PUT /admin/contests/{id}", admin(adminHandler.UpdateContest))
	mux.HandleFunc("DELETE /admin/contests/{id}", admin(adminHandler.DeleteContest))
	mux.HandleFunc("POST /admin/contests/{id}/reset", admin(adminHandler.ResetContest))
	mux.HandleFunc("GET /admin/contests/{id}/results", admin(adminHandler.ContestResults))

	mux.HandleFunc("GET /admin/contests/{id}/categories", admin(adminHandler.ListCategories))
	mux.HandleFunc("POST /admin/contests/{id}/categories", admin(adminHandler.CreateCategory))
	mux.HandleFunc("PUT /admin/categories/{id}", admin(adminHandler.UpdateCategory))
	mux.HandleFunc("DELETE /admin/categories/{id}", admin(adminHandler.DeleteCategory))

	mux.HandleFunc("POST /admin/categories/{id}/nominees", admin(adminHandler.AddNominee))
	mux.HandleFunc("PUT /admin/nominees/{id}", admin(adminHandler.UpdateNominee))
	mux.HandleFunc("DELETE /admin/nominees/{id}", admin(adminHandler.DeleteNominee))
	mux.HandleFunc("POST /admin/nominees/{id}/image", admin(adminHandler.UploadNomineeImage))

	mux.HandleFunc("GET /admin/contests/{id}/voters", admin(adminHandler.ListVoters))
	mux.HandleFunc("POST /admin/contests/{id}/voters", admin(adminHandler.CreateVoters))
	mux.HandleFunc("POST /admin/voters/{id}/toggle", admin(adminHandler.ToggleVoter))
	mux.HandleFunc("DELETE /admin/voters/{id}/votes", admin(adminHandler.ClearVoterVotes))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("awards API v1"))
	})

	return mux
}
