package middlewares

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userId").(string))
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	valid := signToken(t, "test-secret", jwt.MapClaims{
		"id":  "64a0f2c1e8b4a93f2c1e8b4a",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	expired := signToken(t, "test-secret", jwt.MapClaims{
		"id":  "64a0f2c1e8b4a93f2c1e8b4a",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"id":  "64a0f2c1e8b4a93f2c1e8b4a",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubject := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: fiber.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", wantStatus: fiber.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.token", wantStatus: fiber.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expired, wantStatus: fiber.StatusUnauthorized},
		{name: "wrong signing key", header: "Bearer " + wrongKey, wantStatus: fiber.StatusUnauthorized},
		{name: "missing id claim", header: "Bearer " + noSubject, wantStatus: fiber.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, wantStatus: fiber.StatusOK},
	}

	app := newTestApp()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			if tt.wantStatus == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != "64a0f2c1e8b4a93f2c1e8b4a" {
					t.Errorf("Locals userId = %q, want the token's id claim", string(body))
				}
			}
		})
	}
}
