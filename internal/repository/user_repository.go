package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"elystate/model"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	// FindByEmail returns (nil, nil) when no document matches.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Upsert writes the user document under its email key. Used only for
	// first registration; callers check existence first to keep the
	// operation idempotent.
	Upsert(ctx context.Context, user model.User) (*mongo.UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error)
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) UserRepository {
	return &mongoUserRepository{coll: coll}
}

func (r *mongoUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepository) Upsert(ctx context.Context, user model.User) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": user.Email}
	update := bson.M{"$set": bson.M{
		"email":     user.Email,
		"name":      user.Name,
		"photo":     user.Photo,
		"role":      user.Role,
		"timestamp": user.Timestamp,
	}}
	return r.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
}

func (r *mongoUserRepository) SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
}

func (r *mongoUserRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.M{"_id": id})
}
