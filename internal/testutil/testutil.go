// Package testutil holds the shared fixtures for unit tests: an in-memory
// database with the full schema, seeded users, and a request helper for
// exercising handlers through fiber's test transport.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/models"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
	"github.com/localnerve/boardsdb/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret signs test tokens.
const JWTSecret = "test-secret"

// SetupDB creates an in-memory SQLite database with the full schema.
// The pool is pinned to one connection; each pooled connection would
// otherwise get its own empty :memory: database.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.BoardList{},
		&models.BoardListCard{},
		&models.Comment{},
		&models.Attachment{},
		&models.CardAttachment{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateUser registers a user directly against the database.
func CreateUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user, err := services.Register(db, name, "secret123")
	if err != nil {
		t.Fatalf("Failed to create test user %q: %v", name, err)
	}
	return user
}

// Token issues a signed bearer token for the user.
func Token(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := services.IssueToken(JWTSecret, types.Identity{ID: user.ID, Name: user.Name})
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// NewApp creates a fiber app with the production error boundary.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return utils.WriteError(c, err)
		},
	})
}

// DoJSON performs a JSON request against the app. A nil body sends no
// payload; a non-empty token goes out as a bearer credential.
func DoJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

// DecodeJSON decodes a response body into out.
func DecodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}
