package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"elystate/dto"
	"elystate/internal/authctx"
	"elystate/internal/middleware"
	"elystate/internal/repository"
	"elystate/internal/validation"
	"elystate/model"
)

type PropertyHandler struct {
	properties repository.PropertyRepository
	authz      *middleware.Authz
	log        *logrus.Logger
}

func NewPropertyHandler(properties repository.PropertyRepository, authz *middleware.Authz, log *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{properties: properties, authz: authz, log: log}
}

// Create handles POST /properties. Agent role enforced on the route; the
// owning agent is always the authenticated actor, never the payload.
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	id, ok := authctx.IdentityFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.CreatePropertyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	property := model.Property{
		Title:        req.Title,
		Location:     req.Location,
		Image:        req.Image,
		Description:  req.Description,
		Price:        model.PriceRange{Start: req.Price.Start, End: req.Price.End},
		AgentEmail:   id.Email,
		AgentName:    req.AgentName,
		AgentImage:   req.AgentImage,
		Verification: model.VerificationPending,
	}
	res, err := h.properties.Insert(c.Context(), property)
	if err != nil {
		return err
	}
	h.log.WithField("agent", id.Email).Info("property created")
	return c.JSON(res)
}

// List godoc
// @Summary List properties
// @Description Without an email filter this is the public catalog. With one it is the agent dashboard, self-access checked.
// @Tags properties
// @Produce json
// @Param email query string false "Filter by owning agent"
// @Success 200 {array} model.Property
// @Router /properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		props, err := h.properties.FindAll(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(props)
	}

	if err := h.authz.RequireSelf(c, email); err != nil {
		return err
	}
	props, err := h.properties.FindByAgent(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(props)
}

// GetByID handles GET /property/:id. Public; an absent document answers
// null, not an error.
func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.properties.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// Update handles PUT /property/:id. Owner or admin; replaces exactly the
// editable listing fields, leaving verification and agent untouched.
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePropertyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	existing, err := h.properties.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if existing == nil {
		return c.JSON(&mongo.UpdateResult{})
	}
	if err := h.authz.RequireSelf(c, existing.AgentEmail); err != nil {
		return err
	}

	res, err := h.properties.Replace(c.Context(), id, model.Property{
		Title:       req.Title,
		Location:    req.Location,
		Image:       req.Image,
		Description: req.Description,
		Price:       model.PriceRange{Start: req.Price.Start, End: req.Price.End},
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// PatchVerification handles PATCH /property/:id. Admin only, enforced on
// the route. Touches exactly the verification field.
func (h *PropertyHandler) PatchVerification(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return err
	}

	var req dto.PatchVerificationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	res, err := h.properties.SetVerification(c.Context(), id, req.Verification)
	if err != nil {
		return err
	}
	h.log.WithFields(logrus.Fields{"property": id.Hex(), "verification": req.Verification}).Info("verification changed")
	return c.JSON(res)
}

// Delete handles DELETE /property/:id. Owner or admin.
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return err
	}

	existing, err := h.properties.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if existing == nil {
		return c.JSON(&mongo.DeleteResult{})
	}
	if err := h.authz.RequireSelf(c, existing.AgentEmail); err != nil {
		return err
	}

	res, err := h.properties.DeleteByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// DeleteByAgent handles DELETE /properties?email=. Removes every listing
// of one agent; self-access checked.
func (h *PropertyHandler) DeleteByAgent(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email query required")
	}
	if err := h.authz.RequireSelf(c, email); err != nil {
		return err
	}
	res, err := h.properties.DeleteByAgent(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
