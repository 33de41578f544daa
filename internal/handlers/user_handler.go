package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"elystate/dto"
	"elystate/internal/middleware"
	"elystate/internal/repository"
	"elystate/internal/validation"
	"elystate/model"
)

type UserHandler struct {
	users repository.UserRepository
	authz *middleware.Authz
	log   *logrus.Logger
}

func NewUserHandler(users repository.UserRepository, authz *middleware.Authz, log *logrus.Logger) *UserHandler {
	return &UserHandler{users: users, authz: authz, log: log}
}

// Upsert godoc
// @Summary Register or fetch a user by email
// @Description Idempotent: an existing record is returned unchanged, never overwritten.
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} model.User
// @Router /users/{email} [put]
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	email := c.Params("email")

	var req dto.UpsertUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	existing, err := h.users.FindByEmail(c.Context(), email)
	if err != nil {
		return err
	}
	if existing != nil {
		return c.JSON(existing)
	}

	role := req.Role
	if role == "" {
		role = model.RoleGuest
	}
	user := model.User{
		Email:     email,
		Name:      req.Name,
		Photo:     req.Photo,
		Role:      role,
		Timestamp: time.Now().UnixMilli(),
	}
	res, err := h.users.Upsert(c.Context(), user)
	if err != nil {
		return err
	}
	h.log.WithField("email", email).Info("user registered")
	return c.JSON(res)
}

// List handles GET /users. Admin only, enforced on the route.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.FindAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GetByEmail handles GET /user?email=. Self-access checked before the read.
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email query required")
	}
	if err := h.authz.RequireSelf(c, email); err != nil {
		return err
	}
	u, err := h.users.FindByEmail(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// PatchRole handles PATCH /users/:email. Admin only, enforced on the
// route. Touches exactly the role field.
func (h *UserHandler) PatchRole(c *fiber.Ctx) error {
	email := c.Params("email")

	var req dto.PatchRoleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	res, err := h.users.SetRole(c.Context(), email, req.Role)
	if err != nil {
		return err
	}
	h.log.WithFields(logrus.Fields{"email": email, "role": req.Role}).Info("role changed")
	return c.JSON(res)
}

// Delete handles DELETE /user/:id. Admin only, enforced on the route.
// A missing id yields a zero-count result, not an error.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.users.DeleteByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
