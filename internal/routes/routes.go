package routes

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"elystate/configs"
	"elystate/internal/handlers"
	"elystate/internal/middleware"
	"elystate/internal/repository"
	"elystate/internal/token"
	"elystate/model"
)

// Deps is everything the HTTP surface needs, constructed once at startup
// and injected. Tests build the same app over fake repositories.
type Deps struct {
	Cfg        configs.Config
	Log        *logrus.Logger
	Tokens     *token.Service
	Users      repository.UserRepository
	Properties repository.PropertyRepository
	Wishlist   repository.WishlistRepository
	Offers     repository.OfferRepository
}

// New assembles the fiber app: error envelope, CORS, request logging, and
// the full route table with its auth gates.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(d.Log),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(d.Log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(d.Cfg.Origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	gate := middleware.NewGate(d.Tokens, d.Cfg.AuthTransport)
	authz := middleware.NewAuthz(d.Users)

	authH := handlers.NewAuthHandler(d.Cfg, d.Tokens)
	userH := handlers.NewUserHandler(d.Users, authz, d.Log)
	propH := handlers.NewPropertyHandler(d.Properties, authz, d.Log)
	wishH := handlers.NewWishlistHandler(d.Wishlist, authz, d.Log)
	offerH := handlers.NewOfferHandler(d.Offers, authz, d.Log)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from ElyState Server..")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// auth
	app.Post("/jwt", authH.IssueToken)
	app.Get("/logout", authH.Logout)

	// users
	app.Put("/users/:email", userH.Upsert)
	app.Get("/users", gate.RequireAuth(), authz.RequireRole(model.RoleAdmin), userH.List)
	app.Get("/user", gate.RequireAuth(), userH.GetByEmail)
	app.Patch("/users/:email", gate.RequireAuth(), authz.RequireRole(model.RoleAdmin), userH.PatchRole)
	app.Delete("/user/:id", gate.RequireAuth(), authz.RequireRole(model.RoleAdmin), userH.Delete)

	// wishlist
	app.Post("/wishlist", gate.RequireAuth(), wishH.Create)
	app.Get("/wishlist", gate.RequireAuth(), wishH.List)
	app.Get("/wishlist/:id", gate.RequireAuth(), wishH.GetByID)
	app.Delete("/wishlist/:id", gate.RequireAuth(), wishH.Delete)

	// offers
	app.Post("/offers", gate.RequireAuth(), offerH.Create)
	app.Get("/offers", gate.RequireAuth(), offerH.ListByBuyer)
	app.Get("/offer", gate.RequireAuth(), offerH.ListByAgent)
	app.Patch("/offer/:id", gate.RequireAuth(), offerH.PatchStatus)

	// properties
	app.Post("/properties", gate.RequireAuth(), authz.RequireRole(model.RoleAgent, model.RoleAdmin), propH.Create)
	app.Get("/properties", gate.Attach(), propH.List)
	app.Delete("/properties", gate.RequireAuth(), propH.DeleteByAgent)
	app.Get("/property/:id", propH.GetByID)
	app.Put("/property/:id", gate.RequireAuth(), propH.Update)
	app.Patch("/property/:id", gate.RequireAuth(), authz.RequireRole(model.RoleAdmin), propH.PatchVerification)
	app.Delete("/property/:id", gate.RequireAuth(), propH.Delete)

	return app
}

// errorHandler renders the single structured error envelope. Store and
// other unexpected errors are logged here with the request id and masked
// from the caller.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"request_id": c.Locals("request_id"),
				"method":     c.Method(),
				"path":       c.Path(),
			}).WithError(err).Error("request failed")
			message = "internal server error"
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
			"code":    code,
		})
	}
}
