package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"elystate/model"
)

type WishlistRepository interface {
	// Exists checks for the (property, user) pair.
	Exists(ctx context.Context, propertyID, userEmail string) (bool, error)
	// Insert returns ErrDuplicate when the pair index rejects the entry.
	Insert(ctx context.Context, entry model.WishlistEntry) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]model.WishlistEntry, error)
	FindByUser(ctx context.Context, userEmail string) ([]model.WishlistEntry, error)
	// FindByID returns (nil, nil) when no document matches.
	FindByID(ctx context.Context, id bson.ObjectID) (*model.WishlistEntry, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error)
}

type mongoWishlistRepository struct {
	coll *mongo.Collection
}

func NewWishlistRepository(coll *mongo.Collection) WishlistRepository {
	return &mongoWishlistRepository{coll: coll}
}

func (r *mongoWishlistRepository) Exists(ctx context.Context, propertyID, userEmail string) (bool, error) {
	filter := bson.M{"property_id": propertyID, "user_email": userEmail}
	err := r.coll.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *mongoWishlistRepository) Insert(ctx context.Context, entry model.WishlistEntry) (*mongo.InsertOneResult, error) {
	res, err := r.coll.InsertOne(ctx, entry)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicate
	}
	return res, err
}

func (r *mongoWishlistRepository) FindAll(ctx context.Context) ([]model.WishlistEntry, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoWishlistRepository) FindByUser(ctx context.Context, userEmail string) ([]model.WishlistEntry, error) {
	return r.find(ctx, bson.M{"user_email": userEmail})
}

func (r *mongoWishlistRepository) find(ctx context.Context, filter any) ([]model.WishlistEntry, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.WishlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoWishlistRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.WishlistEntry, error) {
	var entry model.WishlistEntry
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoWishlistRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.M{"_id": id})
}
