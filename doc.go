// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the awards API server.

Voters receive a personal link and vote once per category, one category at a
time. Results stay sealed until the contest's reveal time. Admins manage
contests, categories, nominees and voter links through /admin.

# Starting the Server

The server reads flags, environment variables and an optional .env file:

	DATABASE_URL=file:awards.db RESULTS_CONTEST_ID=... SESSION_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -results-contest ... -session-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - RESULTS_CONTEST_ID (-results-contest): contest shown at GET /results;
    admins can create it later by passing this id to POST /admin/contests
  - SESSION_SECRET (-session-secret): HMAC key for admin sessions

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ALLOW_ADMIN_RESET (-allow-reset): enables contest reset and delete
  - IP_HASH_SALT (-ip-salt): store hashed voter IPs
  - PUBLIC_BASE_URL (-base-url): prefix for vote links and image URLs
  - IMAGE_DIR (-image-dir) or S3_*: nominee image storage
  - ADMIN_EMAIL, ADMIN_PASSWORD: create or refresh an admin at startup

# Architecture

  - handlers: HTTP request handlers (vote, results, auth, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, admin sessions
  - voting: ballot loader and per-voter flow
  - results: tallying and the sealed results page
  - admin: contest management and reset
  - store: SQL access for SQLite and PostgreSQL
  - images: upload validation and storage
  - models: domain and request/response types
  - auth: voter codes, sessions, passwords
  - db: connection and schema
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
