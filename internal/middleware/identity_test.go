package middleware_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/uushop/shopping-list-go/internal/middleware"
)

// setupIdentityApp builds a minimal app with trusted-header identity and one
// command behind a User-or-better allow-list
func setupIdentityApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.ResolveIdentity(nil))
	app.Get("/cmd",
		middleware.Authorize(middleware.ProfileAuthorities, middleware.ProfileUser),
		func(c *fiber.Ctx) error {
			identity := middleware.IdentityFrom(c)
			return c.JSON(fiber.Map{"id": identity.ID, "profile": identity.Profile})
		})
	return app
}

func errorMapKeys(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	errorMap, ok := body["uuAppErrorMap"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected uuAppErrorMap in body, got %v", body)
	}
	return errorMap
}

// TestUnauthenticatedWithoutHeaders verifies requests without identity
// markers get 401 system/unauthenticated
func TestUnauthenticatedWithoutHeaders(t *testing.T) {
	app := setupIdentityApp()

	req := httptest.NewRequest("GET", "/cmd", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if _, ok := errorMapKeys(t, body)["system/unauthenticated"]; !ok {
		t.Errorf("Expected system/unauthenticated in uuAppErrorMap, got %v", body)
	}
}

// TestProfileHeaderAloneIsNotIdentity verifies both markers are required
func TestProfileHeaderAloneIsNotIdentity(t *testing.T) {
	app := setupIdentityApp()

	req := httptest.NewRequest("GET", "/cmd", nil)
	req.Header.Set(middleware.HeaderProfile, middleware.ProfileUser)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

// TestProfileOutsideAllowListIsForbidden verifies 403 system/unauthorized
func TestProfileOutsideAllowListIsForbidden(t *testing.T) {
	app := setupIdentityApp()

	req := httptest.NewRequest("GET", "/cmd", nil)
	req.Header.Set(middleware.HeaderProfile, middleware.ProfileViewer)
	req.Header.Set(middleware.HeaderIdentity, "user-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if resp.StatusCode != 403 {
		t.Errorf("Expected status 403, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if _, ok := errorMapKeys(t, body)["system/unauthorized"]; !ok {
		t.Errorf("Expected system/unauthorized in uuAppErrorMap, got %v", body)
	}
}

// TestAllowedProfilePasses verifies an allow-listed profile reaches the
// handler with its identity resolved
func TestAllowedProfilePasses(t *testing.T) {
	app := setupIdentityApp()

	req := httptest.NewRequest("GET", "/cmd", nil)
	req.Header.Set(middleware.HeaderProfile, middleware.ProfileUser)
	req.Header.Set(middleware.HeaderIdentity, "user-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["id"] != "user-1" || body["profile"] != middleware.ProfileUser {
		t.Errorf("Unexpected identity in response: %v", body)
	}
}

// TestAlternateIdentityHeader verifies X-User-Id is accepted when
// X-User-Identity is absent
func TestAlternateIdentityHeader(t *testing.T) {
	app := setupIdentityApp()

	req := httptest.NewRequest("GET", "/cmd", nil)
	req.Header.Set(middleware.HeaderProfile, middleware.ProfileAuthorities)
	req.Header.Set(middleware.HeaderIdentityAlt, "admin-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["id"] != "admin-1" {
		t.Errorf("Expected id admin-1, got %v", body["id"])
	}
}
