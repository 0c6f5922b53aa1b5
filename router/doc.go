// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the awards API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg, bucket)

# Endpoints

Health:

	GET /health

Voting (public, token from the vote link):

	GET  /vote?token=  - Ballot status or current step
	POST /vote/select  - Pick a nominee
	POST /vote/confirm - Record the pick and advance

Results (public, sealed until reveal_at):

	GET /results[?demo=true]

Auth:

	POST /auth/login - Email and password, returns a bearer session
	GET  /auth/me    - Current user

Admin (bearer session of a user with an admin profile):

	GET                 /admin/capabilities
	GET, POST           /admin/contests
	PUT, DELETE         /admin/contests/{id}
	POST                /admin/contests/{id}/reset
	GET                 /admin/contests/{id}/results
	GET, POST           /admin/contests/{id}/categories
	PUT, DELETE         /admin/categories/{id}
	POST                /admin/categories/{id}/nominees
	PUT, DELETE         /admin/nominees/{id}
	POST                /admin/nominees/{id}/image
	GET, POST           /admin/contests/{id}/voters
	POST                /admin/voters/{id}/toggle
	DELETE              /admin/voters/{id}/votes

GET /images/{name} is registered only when the bucket is a local
images.DirBucket.
*/
package router
