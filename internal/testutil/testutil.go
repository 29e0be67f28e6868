package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"menu-backend/internal/config"
	"menu-backend/internal/database"
	"menu-backend/internal/server"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenTestDB opens a migrated in-memory SQLite database scoped to the test
// name. cache=shared keeps the database alive across the pool's connections;
// _fk=1 turns foreign key enforcement on, matching Postgres behavior.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := "file:" + name + "?mode=memory&cache=shared&_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func NewTestConfig() *config.Config {
	return &config.Config{
		HTTPPort:      "0",
		SessionSecret: "0123456789abcdef0123456789abcdef",
		SessionTTL:    5 * time.Minute,
		CORSOrigins:   "http://localhost",
		Env:           config.EnvDevelopment,
	}
}

// NewTestApp builds the full application over a fresh in-memory database.
func NewTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := OpenTestDB(t)
	return server.New(NewTestConfig(), db), db
}

// JSONRequest builds a request with an optional JSON body and bearer token.
func JSONRequest(t *testing.T, method, path string, payload any, token string) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// Do runs the request through the app and decodes the JSON response body.
func Do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	var decoded map[string]any
	if len(raw) > 0 && json.Valid(raw) {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp.StatusCode, decoded
}

// RegisterAndLogin creates a user through the API and returns a session token.
func RegisterAndLogin(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	code, _ := Do(t, app, JSONRequest(t, http.MethodPost, "/register", map[string]any{
		"username": username,
		"password": password,
	}, ""))
	if code != http.StatusOK {
		t.Fatalf("register %s: unexpected status %d", username, code)
	}

	code, body := Do(t, app, JSONRequest(t, http.MethodPost, "/login", map[string]any{
		"username": username,
		"password": password,
	}, ""))
	if code != http.StatusOK {
		t.Fatalf("login %s: unexpected status %d", username, code)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response", username)
	}
	return token
}
