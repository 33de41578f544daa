package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"elystate/configs"
	"elystate/internal/authctx"
	"elystate/internal/token"
)

// CookieName is the session cookie used by the cookie transport.
const CookieName = "token"

// Gate is the auth gate in front of every protected route. The credential
// transport (bearer header vs session cookie) is a deployment setting, not
// a second implementation.
type Gate struct {
	tokens    *token.Service
	transport configs.AuthTransport
}

func NewGate(tokens *token.Service, transport configs.AuthTransport) *Gate {
	return &Gate{tokens: tokens, transport: transport}
}

// RequireAuth extracts the credential, verifies it, and binds the decoded
// identity for downstream handlers. Requests without a valid credential
// never reach a handler.
func (g *Gate) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cred := g.credential(c)
		if cred == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credential")
		}

		claims, err := g.tokens.Verify(cred)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		authctx.Bind(c, authctx.Identity{Email: claims.Email, Name: claims.Name})
		return c.Next()
	}
}

// Attach binds the identity when a credential is present but lets
// anonymous requests through. Used on routes that are public until a
// caller asks for an identity-scoped view; a credential that is present
// but invalid is still rejected.
func (g *Gate) Attach() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cred := g.credential(c)
		if cred == "" {
			return c.Next()
		}
		claims, err := g.tokens.Verify(cred)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		authctx.Bind(c, authctx.Identity{Email: claims.Email, Name: claims.Name})
		return c.Next()
	}
}

func (g *Gate) credential(c *fiber.Ctx) string {
	if g.transport == configs.TransportCookie {
		return c.Cookies(CookieName)
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[len("bearer "):])
}
