// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/caiosouza15/seufirmino-awards/images"
	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/store"
	"github.com/caiosouza15/seufirmino-awards/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *sql.DB, string) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	dir := t.TempDir()
	bucket, err := images.NewDirBucket(dir, cfg.PublicBaseURL)
	if err != nil {
		t.Fatalf("Failed to create bucket: %v", err)
	}
	return NewRouter(store.New(db), cfg, bucket), db, dir
}

func TestHealthEndpoint(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "awards API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, db, _ := newTestRouter(t)
	cfg := testutil.GetTestConfig()
	adminID := testutil.CreateTestUser(t, db, "admin@example.com", "pw", true)
	headers := testutil.AuthHeaders(t, cfg, adminID)

	// Routes must reach their handler; 400 and 404 are valid handler answers
	testCases := []struct {
		method string
		path   string
	}{
		// Health and root
		{"GET", "/health"},
		{"GET", "/"},

		// Voting and results
		{"GET", "/vote"},
		{"POST", "/vote/select"},
		{"POST", "/vote/confirm"},
		{"GET", "/results"},

		// Auth
		{"POST", "/auth/login"},
		{"GET", "/auth/me"},

		// Admin
		{"GET", "/admin/capabilities"},
		{"GET", "/admin/contests"},
		{"POST", "/admin/contests"},
		{"PUT", "/admin/contests/test-id"},
		{"DELETE", "/admin/contests/test-id"},
		{"POST", "/admin/contests/test-id/reset"},
		{"GET", "/admin/contests/test-id/results"},
		{"GET", "/admin/contests/test-id/categories"},
		{"POST", "/admin/contests/test-id/categories"},
		{"PUT", "/admin/categories/test-id"},
		{"DELETE", "/admin/categories/test-id"},
		{"POST", "/admin/categories/test-id/nominees"},
		{"PUT", "/admin/nominees/test-id"},
		{"DELETE", "/admin/nominees/test-id"},
		{"POST", "/admin/nominees/test-id/image"},
		{"GET", "/admin/contests/test-id/voters"},
		{"POST", "/admin/contests/test-id/voters"},
		{"POST", "/admin/voters/test-id/toggle"},
		{"DELETE", "/admin/voters/test-id/votes"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := testutil.MakeRequest(tc.method, tc.path, nil, headers)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
			if w.Code == http.StatusUnauthorized {
				t.Errorf("Route %s %s rejected a valid admin session", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},                  // Only GET is defined
		{"DELETE", "/results"},               // Only GET is defined
		{"PUT", "/vote/confirm"},             // Only POST is defined
		{"PUT", "/admin/voters/test/toggle"}, // Only POST is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	mux, db, _ := newTestRouter(t)
	cfg := testutil.GetTestConfig()
	adminID := testutil.CreateTestUser(t, db, "admin@example.com", "pw", true)
	userID := testutil.CreateTestUser(t, db, "user@example.com", "pw", false)

	testCases := []struct {
		name           string
		headers        map[string]string
		expectedStatus int
	}{
		{"no session", nil, http.StatusUnauthorized},
		{"bad token", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
		{"not an admin", testutil.AuthHeaders(t, cfg, userID), http.StatusForbidden},
		{"admin", testutil.AuthHeaders(t, cfg, adminID), http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/admin/contests", nil, tc.headers)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux, db, _ := newTestRouter(t)
	cfg := testutil.GetTestConfig()
	adminID := testutil.CreateTestUser(t, db, "admin@example.com", "pw", true)
	contestID := testutil.CreateOpenContest(t, db, nil)
	testutil.AddTestCategory(t, db, contestID, "Best Dish", 0)

	req := testutil.MakeRequest("GET", "/admin/contests/"+contestID+"/categories", nil, testutil.AuthHeaders(t, cfg, adminID))
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var categories []models.CategoryWithNominees
	testutil.AssertJSON(t, w, &categories)
	if len(categories) != 1 || categories[0].ContestID != contestID {
		t.Errorf("Expected the contest's category, got %+v", categories)
	}
}

func TestLoginThenAdminCall(t *testing.T) {
	mux, db, _ := newTestRouter(t)
	testutil.CreateTestUser(t, db, "admin@example.com", "correct horse", true)

	req := testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{Email: "admin@example.com", Password: "correct horse"}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)

	req = testutil.MakeRequest("GET", "/admin/capabilities", nil, map[string]string{"Authorization": "Bearer " + login.Token})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestServeImages(t *testing.T) {
	mux, _, dir := newTestRouter(t)

	if err := os.WriteFile(filepath.Join(dir, "n1.png"), []byte("\x89PNG\r\n\x1a\n"), 0o644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}

	testCases := []struct {
		path           string
		expectedStatus int
	}{
		{"/images/n1.png", http.StatusOK},
		{"/images/missing.png", http.StatusNotFound},
		{"/images/.hidden", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}
