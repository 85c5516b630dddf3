package middleware_test

import (
	"Tastebook-Backend/internal/middleware"
	"Tastebook-Backend/pkg/jwt"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func whoamiApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Setenv("JWT_SECRET", "middleware-secret")
	jwtService := jwt.NewJWTService()

	app := fiber.New()
	app.Get("/whoami", middleware.NewMiddleware().OptionalAuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app, jwtService
}

func resolvedUserID(t *testing.T, app *fiber.App, authHeader string) string {
	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", res.StatusCode)
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body.UserID
}

func TestOptionalAuthMiddleware(t *testing.T) {
	app, jwtService := whoamiApp(t)
	userID := uuid.New().String()

	token, err := jwtService.GenerateToken(userID, "user")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if got := resolvedUserID(t, app, "Bearer "+token); got != userID {
		t.Errorf("Expected user id %s resolved from a valid token, got %q", userID, got)
	}

	// anonymous and malformed requests fall through without an identity
	if got := resolvedUserID(t, app, ""); got != "" {
		t.Errorf("Expected no identity without a token, got %q", got)
	}
	if got := resolvedUserID(t, app, "Bearer not-a-token"); got != "" {
		t.Errorf("Expected no identity for a garbage token, got %q", got)
	}
	if got := resolvedUserID(t, app, token); got != "" {
		t.Errorf("Expected no identity without the Bearer scheme, got %q", got)
	}
}
