package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elystate/configs"
	"elystate/internal/authctx"
	"elystate/internal/middleware"
	"elystate/internal/token"
)

func gateApp(t *testing.T, transport configs.AuthTransport, optional bool) (*fiber.App, *token.Service) {
	t.Helper()
	tokens := token.NewService("test-secret")
	gate := middleware.NewGate(tokens, transport)

	app := fiber.New()
	guard := gate.RequireAuth()
	if optional {
		guard = gate.Attach()
	}
	app.Get("/whoami", guard, func(c *fiber.Ctx) error {
		if id, ok := authctx.IdentityFrom(c); ok {
			return c.SendString(id.Email)
		}
		return c.SendString("anonymous")
	})
	return app, tokens
}

func TestBearerTransport(t *testing.T) {
	app, tokens := gateApp(t, configs.TransportBearer, false)
	signed, err := tokens.Issue("alice@example.com", "")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{"missing credential", "", fiber.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized, ""},
		{"garbage token", "Bearer garbage", fiber.StatusUnauthorized, ""},
		{"valid token", "Bearer " + signed, fiber.StatusOK, "alice@example.com"},
		{"case-insensitive scheme", "bearer " + signed, fiber.StatusOK, "alice@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, readBody(t, resp))
			}
		})
	}
}

func TestCookieTransport(t *testing.T) {
	app, tokens := gateApp(t, configs.TransportCookie, false)
	signed, err := tokens.Issue("alice@example.com", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: signed})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice@example.com", readBody(t, resp))

	// A bearer header is not a credential on the cookie transport.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAttachAllowsAnonymous(t *testing.T) {
	app, tokens := gateApp(t, configs.TransportBearer, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "anonymous", readBody(t, resp))

	// Present but invalid credentials are still rejected.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	signed, err := tokens.Issue("alice@example.com", "")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", readBody(t, resp))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
