package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/testutil"
)

func TestSetupOnEmptyDatabase(t *testing.T) {
	dir := t.TempDir()
	cfg := testutil.GetTestConfig()
	cfg.DatabaseURL = "file:" + filepath.Join(dir, "fresh.db")
	cfg.ResultsContestID = "awards-2026"
	cfg.ImageDir = filepath.Join(dir, "images")
	cfg.AdminEmail = "Admin@Example.com"
	cfg.AdminPassword = "correct horse"

	server, closeDB, err := setup(context.Background(), cfg)
	if err != nil {
		t.Fatalf("setup() on an empty database failed: %v", err)
	}
	t.Cleanup(closeDB)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)
		return w
	}

	w := serve(httptest.NewRequest("GET", "/health", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// The results contest does not exist yet.
	w = serve(httptest.NewRequest("GET", "/results", nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if results.Status != models.ResultsError {
		t.Errorf("Expected status %q, got %q", models.ResultsError, results.Status)
	}

	w = serve(testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{Email: "admin@example.com", Password: "correct horse"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)

	contest := models.ContestRequest{
		ID:      cfg.ResultsContestID,
		Name:    "Seu Firmino Awards",
		StartAt: "2026-01-01T10:00",
		EndAt:   "2026-01-31T10:00",
	}
	w = serve(testutil.MakeRequest("POST", "/admin/contests", contest, map[string]string{"Authorization": "Bearer " + login.Token}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = serve(httptest.NewRequest("GET", "/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	results = models.ResultsResponse{}
	testutil.AssertJSON(t, w, &results)
	if results.Status == models.ResultsError {
		t.Errorf("Expected results once the contest exists, got %q: %s", results.Status, results.Message)
	}
}

func TestSetupRejectsUnknownDatabaseType(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.DatabaseType = "mysql"

	if _, _, err := setup(context.Background(), cfg); err == nil {
		t.Fatal("Expected an error for an unsupported database type")
	}
}
