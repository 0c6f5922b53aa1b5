// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/caiosouza15/seufirmino-awards/auth"
	"github.com/caiosouza15/seufirmino-awards/cliparse"
	"github.com/caiosouza15/seufirmino-awards/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "awards-test.db")
	conn, err := db.Open(db.TypeSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		DatabaseURL:      "file::memory:",
		DatabaseType:     db.TypeSQLite,
		ResultsContestID: "",
		SessionSecret:    "test-session-secret",
		SessionTTL:       time.Hour,
		BallotTTL:        30 * time.Minute,
		IPHashSalt:       "test-ip-salt",
		PublicBaseURL:    "http://awards.test",
	}
}

// CreateTestContest inserts a contest open between start and end and returns its ID
func CreateTestContest(t *testing.T, conn *sql.DB, start, end time.Time, revealAt *time.Time) string {
	t.Helper()

	contestID := uuid.NewString()
	var reveal sql.NullTime
	if revealAt != nil {
		reveal = sql.NullTime{Time: revealAt.UTC(), Valid: true}
	}

	_, err := conn.Exec(`
		INSERT INTO contests (id, name, description, start_at, end_at, reveal_at, is_active, created_at)
		VALUES ($1, 'Test Awards', 'A test contest', $2, $3, $4, $5, $6)
	`, contestID, start.UTC(), end.UTC(), reveal, true, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test contest: %v", err)
	}

	return contestID
}

// CreateOpenContest inserts a contest that opened an hour ago and closes in an hour
func CreateOpenContest(t *testing.T, conn *sql.DB, revealAt *time.Time) string {
	t.Helper()
	now := time.Now()
	return CreateTestContest(t, conn, now.Add(-time.Hour), now.Add(time.Hour), revealAt)
}

// AddTestCategory adds a category to a contest and returns the category ID
func AddTestCategory(t *testing.T, conn *sql.DB, contestID, name string, sortOrder int) string {
	t.Helper()

	categoryID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO categories (id, contest_id, name, sort_order)
		VALUES ($1, $2, $3, $4)
	`, categoryID, contestID, name, sortOrder)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return categoryID
}

// AddTestNominee adds a nominee to a category and returns the nominee ID
func AddTestNominee(t *testing.T, conn *sql.DB, categoryID, name string, sortOrder int) string {
	t.Helper()

	nomineeID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO nominees (id, category_id, name, sort_order)
		VALUES ($1, $2, $3, $4)
	`, nomineeID, categoryID, name, sortOrder)
	if err != nil {
		t.Fatalf("Failed to create test nominee: %v", err)
	}

	return nomineeID
}

// CreateTestVoter creates a voter and returns its ID and link code
func CreateTestVoter(t *testing.T, conn *sql.DB, contestID string, active bool) (voterID, code string) {
	t.Helper()

	voterID = uuid.NewString()
	code = auth.GenerateVoterCode()
	_, err := conn.Exec(`
		INSERT INTO voters (id, contest_id, code, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voterID, contestID, code, active, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return voterID, code
}

// AddTestVote records a vote and returns its ID
func AddTestVote(t *testing.T, conn *sql.DB, contestID, categoryID, nomineeID, voterID string) string {
	t.Helper()

	voteID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO votes (id, contest_id, category_id, nominee_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, voteID, contestID, categoryID, nomineeID, voterID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// CountRows returns the number of rows in table matching where (may be empty)
func CountRows(t *testing.T, conn *sql.DB, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var count int
	if err := conn.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}

// CreateTestUser inserts a user with the given password, optionally granting admin
func CreateTestUser(t *testing.T, conn *sql.DB, email, password string, admin bool) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	userID := uuid.NewString()
	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)
	`, userID, email, hash, now)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	if admin {
		_, err = conn.Exec(`INSERT INTO admin_profiles (user_id, created_at) VALUES ($1, $2)`, userID, now)
		if err != nil {
			t.Fatalf("Failed to create admin profile: %v", err)
		}
	}

	return userID
}

// AuthHeaders returns an Authorization header carrying a session for userID
func AuthHeaders(t *testing.T, cfg cliparse.Config, userID string) map[string]string {
	t.Helper()

	token, err := auth.IssueSession(userID, cfg.SessionSecret, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("Failed to issue session: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
