// @title ElyState API
// @version 1.0
// @description REST backend for the ElyState real-estate listing platform.
// @BasePath /

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"elystate/configs"
	"elystate/database"
	_ "elystate/docs"
	"elystate/internal/repository"
	"elystate/internal/routes"
	"elystate/internal/token"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("mongo connect failed")
	}
	defer func() {
		if err := store.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("mongo disconnect failed")
		}
	}()
	log.Info("connected to MongoDB")

	if err := store.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Fatal("index creation failed")
	}

	app := routes.New(routes.Deps{
		Cfg:        cfg,
		Log:        log,
		Tokens:     token.NewService(cfg.JWTSecret),
		Users:      repository.NewUserRepository(store.Users),
		Properties: repository.NewPropertyRepository(store.Properties),
		Wishlist:   repository.NewWishlistRepository(store.Wishlist),
		Offers:     repository.NewOfferRepository(store.Offers),
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.WithField("port", cfg.Port).Info("ElyState server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func newLogger(cfg configs.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if cfg.Env == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
