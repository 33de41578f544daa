package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"elystate/configs"
)

// Store bundles the four collections the handlers work against. It is
// constructed once at startup and injected; nothing reaches for a global
// client.
type Store struct {
	client     *mongo.Client
	Users      *mongo.Collection
	Properties *mongo.Collection
	Wishlist   *mongo.Collection
	Offers     *mongo.Collection
}

// Connect establishes the single long-lived client and pings the primary
// before handing the store out.
func Connect(ctx context.Context, cfg configs.Config) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.DBName)
	return &Store{
		client:     client,
		Users:      db.Collection("users"),
		Properties: db.Collection("properties"),
		Wishlist:   db.Collection("wishlist"),
		Offers:     db.Collection("offers"),
	}, nil
}

// EnsureIndexes creates the uniqueness constraints the handlers rely on:
// one user document per email, and at most one wishlist entry per
// (property, user) pair. The wishlist index closes the check-then-insert
// race between concurrent identical requests.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	_, err = s.Wishlist.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "property_id", Value: 1}, {Key: "user_email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("wishlist pair index: %w", err)
	}
	return nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
