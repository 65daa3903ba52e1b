package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/middleware"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
	"github.com/localnerve/boardsdb/internal/utils"
)

const secret = "test-secret"

func newGatedApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return utils.WriteError(c, err)
		},
	})
	app.Use(middleware.ResolveIdentity(secret))
	app.Get("/open", func(c *fiber.Ctx) error {
		if identity, ok := middleware.Identity(c); ok {
			return c.JSON(identity)
		}
		return c.SendString("anonymous")
	})
	app.Get("/gated", middleware.RequireUser(), func(c *fiber.Ctx) error {
		identity, _ := middleware.Identity(c)
		return c.JSON(identity)
	})
	return app
}

// TestAnonymousPassesOpenRoutes tests that an absent credential is not an
// error on ungated routes
func TestAnonymousPassesOpenRoutes(t *testing.T) {
	app := newGatedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

// TestGateRejectsAnonymous tests the 401 on gated routes
func TestGateRejectsAnonymous(t *testing.T) {
	app := newGatedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
}

// TestGatePassesValidCredential tests the token round trip through the
// resolver
func TestGatePassesValidCredential(t *testing.T) {
	app := newGatedApp()

	token, err := services.IssueToken(secret, types.Identity{ID: 7, Name: "alice"})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	req := httptest.NewRequest("GET", "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

// TestMalformedCredentialRejectedEverywhere tests that a bad token fails
// even on open routes
func TestMalformedCredentialRejectedEverywhere(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
}

// TestForgedSignatureRejected tests a token signed with another secret
func TestForgedSignatureRejected(t *testing.T) {
	app := newGatedApp()

	token, err := services.IssueToken("other-secret", types.Identity{ID: 7, Name: "alice"})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	req := httptest.NewRequest("GET", "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
}
