package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"elystate/configs"
	"elystate/dto"
	"elystate/internal/middleware"
	"elystate/internal/token"
	"elystate/internal/validation"
)

type AuthHandler struct {
	cfg    configs.Config
	tokens *token.Service
}

func NewAuthHandler(cfg configs.Config, tokens *token.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, tokens: tokens}
}

// IssueToken godoc
// @Summary Issue a session token
// @Description Signs the identity claims. Returns the token in the body, or sets the session cookie when the cookie transport is configured.
// @Tags auth
// @Accept json
// @Produce json
// @Param claims body dto.TokenRequest true "Identity claims"
// @Success 200 {object} dto.TokenResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	signed, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	if h.cfg.AuthTransport == configs.TransportCookie {
		c.Cookie(h.sessionCookie(signed, time.Now().Add(token.TTL)))
		return c.JSON(dto.TokenResponse{Success: true})
	}
	return c.JSON(dto.TokenResponse{Token: signed})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.sessionCookie("", time.Now().Add(-time.Hour)))
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	sameSite := "Strict"
	if h.cfg.IsProduction() {
		sameSite = "None"
	}
	return &fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: sameSite,
	}
}
