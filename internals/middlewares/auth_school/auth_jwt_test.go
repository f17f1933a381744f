// file: internals/middlewares/auth_school/auth_jwt_test.go
package auth_school

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newApp(secret string) (*fiber.App, *map[string]string) {
	captured := map[string]string{}
	app := fiber.New()
	app.Use(OptionalJWT(secret))
	app.Get("/probe", func(c *fiber.Ctx) error {
		if v, ok := c.Locals(LocalsSchoolID).(string); ok {
			captured[LocalsSchoolID] = v
		}
		if v, ok := c.Locals(LocalsUserID).(string); ok {
			captured[LocalsUserID] = v
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &captured
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestOptionalJWT_ExtractsClaims(t *testing.T) {
	app, captured := newApp(testSecret)

	token := signToken(t, jwt.MapClaims{
		"school_id": "6e1fcf7e-6a3c-4a6e-9a30-0c5a83a1f001",
		"user_id":   "9b2f6f4e-12aa-4c59-b7cc-57d9e3b0f002",
	})
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "6e1fcf7e-6a3c-4a6e-9a30-0c5a83a1f001", (*captured)[LocalsSchoolID])
	require.Equal(t, "9b2f6f4e-12aa-4c59-b7cc-57d9e3b0f002", (*captured)[LocalsUserID])
}

func TestOptionalJWT_MissingTokenPassesThrough(t *testing.T) {
	app, captured := newApp(testSecret)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Empty(t, *captured)
}

func TestOptionalJWT_BadSignatureIgnored(t *testing.T) {
	app, captured := newApp("another-secret")

	token := signToken(t, jwt.MapClaims{"school_id": "x"})
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Empty(t, *captured)
}

func TestOptionalJWT_NoSecretConfigured(t *testing.T) {
	app, captured := newApp("")

	token := signToken(t, jwt.MapClaims{"school_id": "x"})
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Empty(t, *captured)
}
