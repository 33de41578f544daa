// Package authctx binds the verified identity to the request and exposes
// it to handlers.
package authctx

import "github.com/gofiber/fiber/v2"

const localsKey = "identity"

// Identity is what the auth gate attaches after verifying a credential.
type Identity struct {
	Email string
	Name  string
}

func Bind(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
}

// IdentityFrom returns the identity the gate bound, if any.
func IdentityFrom(c *fiber.Ctx) (Identity, bool) {
	if v := c.Locals(localsKey); v != nil {
		if id, ok := v.(Identity); ok && id.Email != "" {
			return id, true
		}
	}
	return Identity{}, false
}
