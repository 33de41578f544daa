package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"elystate/dto"
	"elystate/internal/middleware"
	"elystate/internal/repository"
	"elystate/internal/validation"
	"elystate/model"
)

type WishlistHandler struct {
	wishlist repository.WishlistRepository
	authz    *middleware.Authz
	log      *logrus.Logger
}

func NewWishlistHandler(wishlist repository.WishlistRepository, authz *middleware.Authz, log *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, authz: authz, log: log}
}

// Create handles POST /wishlist. Duplicate (property, user) pairs answer
// exists=true rather than an error; the unique pair index makes the check
// hold under concurrent identical requests as well.
func (h *WishlistHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWishlistRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}
	if err := h.authz.RequireSelf(c, req.UserEmail); err != nil {
		return err
	}

	exists, err := h.wishlist.Exists(c.Context(), req.PropertyID, req.UserEmail)
	if err != nil {
		return err
	}
	if exists {
		return c.JSON(dto.WishlistCreateResponse{Exists: true})
	}

	entry := model.WishlistEntry{
		PropertyID: req.PropertyID,
		UserEmail:  req.UserEmail,
		Title:      req.Title,
		Location:   req.Location,
		Image:      req.Image,
		AgentEmail: req.AgentEmail,
	}
	if req.Price != nil {
		entry.Price = &model.PriceRange{Start: req.Price.Start, End: req.Price.End}
	}
	if _, err := h.wishlist.Insert(c.Context(), entry); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(dto.WishlistCreateResponse{Exists: true})
		}
		return err
	}
	return c.JSON(dto.WishlistCreateResponse{Exists: false})
}

// List godoc
// @Summary List wishlist entries
// @Description With an email filter the caller must be that user (or admin); without one, admin only.
// @Tags wishlist
// @Produce json
// @Param email query string false "Filter by user"
// @Success 200 {array} model.WishlistEntry
// @Router /wishlist [get]
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		role, err := h.authz.ActorRole(c)
		if err != nil {
			return err
		}
		if role != model.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "forbidden access")
		}
		entries, err := h.wishlist.FindAll(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(entries)
	}

	if err := h.authz.RequireSelf(c, email); err != nil {
		return err
	}
	entries, err := h.wishlist.FindByUser(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// GetByID handles GET /wishlist/:id. Owner or admin, checked against the
// stored entry.
func (h *WishlistHandler) GetByID(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return err
	}
	entry, err := h.wishlist.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if entry == nil {
		return c.JSON(nil)
	}
	if err := h.authz.RequireSelf(c, entry.UserEmail); err != nil {
		return err
	}
	return c.JSON(entry)
}

// Delete handles DELETE /wishlist/:id. Owner or admin; a missing id yields
// a zero-count result.
func (h *WishlistHandler) Delete(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.wishlist.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if entry == nil {
		return c.JSON(&mongo.DeleteResult{})
	}
	if err := h.authz.RequireSelf(c, entry.UserEmail); err != nil {
		return err
	}

	res, err := h.wishlist.DeleteByID(c.Context(), id)
	if err != nil {
		return err
	}
	h.log.WithField("user", entry.UserEmail).Info("wishlist entry removed")
	return c.JSON(res)
}
