// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request produces one "request" line with method, path, status, remote
and duration_ms. Responses with a 5xx status are logged at warn level.

# Admin Access

Admin routes require a bearer session and an admin profile:

	mux.HandleFunc("GET /admin/contests",
		middleware.WithLogging(middleware.RequireAdmin(secret, store, h.ListContests)))

Missing or invalid sessions get 401, signed-in non-admins get 403. The user
id is available through UserIDFromContext.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

The request Origin is echoed back with credentials allowed. Preflight
OPTIONS requests are answered with 204 and never reach the mux.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.DetailedErrorResponse(w, http.StatusInternalServerError, "message", err)

DetailedErrorResponse adds the raw error text and is used on admin routes only.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Prefers the first X-Forwarded-For hop, then X-Real-IP, then the RemoteAddr
host. Vote handlers hash the result before storage.
*/
package middleware
