package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"elystate/dto"
	"elystate/internal/middleware"
	"elystate/internal/repository"
	"elystate/internal/validation"
	"elystate/model"
)

type OfferHandler struct {
	offers repository.OfferRepository
	authz  *middleware.Authz
	log    *logrus.Logger
}

func NewOfferHandler(offers repository.OfferRepository, authz *middleware.Authz, log *logrus.Logger) *OfferHandler {
	return &OfferHandler{offers: offers, authz: authz, log: log}
}

// Create handles POST /offers. The buyer must be the authenticated actor;
// the status always starts at pending regardless of the payload.
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOfferRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}
	if err := h.authz.RequireSelf(c, req.BuyerEmail); err != nil {
		return err
	}

	offer := model.Offer{
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Location:    req.Location,
		BuyerEmail:  req.BuyerEmail,
		BuyerName:   req.BuyerName,
		AgentEmail:  req.AgentEmail,
		OfferAmount: req.OfferAmount,
		Status:      model.OfferPending,
		BuyingDate:  req.BuyingDate,
	}
	res, err := h.offers.Insert(c.Context(), offer)
	if err != nil {
		return err
	}
	h.log.WithField("buyer", req.BuyerEmail).Info("offer created")
	return c.JSON(res)
}

// ListByBuyer handles GET /offers?email=, the buyer's own offers.
func (h *OfferHandler) ListByBuyer(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email query required")
	}
	if err := h.authz.RequireSelf(c, email); err != nil {
		return err
	}
	offers, err := h.offers.FindByBuyer(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(offers)
}

// ListByAgent handles GET /offer?email=, offers addressed to an agent.
func (h *OfferHandler) ListByAgent(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email query required")
	}
	if err := h.authz.RequireSelf(c, email); err != nil {
		return err
	}
	offers, err := h.offers.FindByAgent(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(offers)
}

// PatchStatus handles PATCH /offer/:id. Only the agent the offer is
// addressed to (or an admin) may change the status, and only the status
// field is touched.
func (h *OfferHandler) PatchStatus(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return err
	}

	var req dto.PatchOfferStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	offer, err := h.offers.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if offer == nil {
		return c.JSON(&mongo.UpdateResult{})
	}
	if err := h.authz.RequireSelf(c, offer.AgentEmail); err != nil {
		return err
	}

	res, err := h.offers.SetStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	h.log.WithFields(logrus.Fields{"offer": id.Hex(), "status": req.Status}).Info("offer status changed")
	return c.JSON(res)
}
