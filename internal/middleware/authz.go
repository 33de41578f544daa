package middleware

import (
	"github.com/gofiber/fiber/v2"

	"elystate/internal/authctx"
	"elystate/internal/repository"
	"elystate/model"
)

// Authz answers role and ownership questions. Roles are always re-read
// from the users collection; the token only vouches for the email.
type Authz struct {
	users repository.UserRepository
}

func NewAuthz(users repository.UserRepository) *Authz {
	return &Authz{users: users}
}

// ActorRole returns the stored role of the authenticated actor. A user
// without a stored record or role counts as guest.
func (a *Authz) ActorRole(c *fiber.Ctx) (string, error) {
	id, ok := authctx.IdentityFrom(c)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	u, err := a.users.FindByEmail(c.Context(), id.Email)
	if err != nil {
		return "", err
	}
	if u == nil || u.Role == "" {
		return model.RoleGuest, nil
	}
	return u.Role, nil
}

// RequireRole admits only actors whose stored role is one of the given
// roles. Runs after RequireAuth.
func (a *Authz) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := a.ActorRole(c)
		if err != nil {
			return err
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "insufficient role")
	}
}

// RequireSelf enforces the self-access check: the email a request operates
// on must match the gate-bound identity. Admins bypass it. Runs before any
// data-store read for the resource itself.
func (a *Authz) RequireSelf(c *fiber.Ctx, email string) error {
	id, ok := authctx.IdentityFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if email == id.Email {
		return nil
	}
	role, err := a.ActorRole(c)
	if err != nil {
		return err
	}
	if role == model.RoleAdmin {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "forbidden access")
}
