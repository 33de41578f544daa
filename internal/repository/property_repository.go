package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"elystate/model"
)

type PropertyRepository interface {
	Insert(ctx context.Context, p model.Property) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]model.Property, error)
	FindByAgent(ctx context.Context, agentEmail string) ([]model.Property, error)
	// FindByID returns (nil, nil) when no document matches.
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Property, error)
	// Replace sets exactly the editable listing fields; verification and
	// agent identity stay as stored.
	Replace(ctx context.Context, id bson.ObjectID, p model.Property) (*mongo.UpdateResult, error)
	SetVerification(ctx context.Context, id bson.ObjectID, verification string) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error)
	DeleteByAgent(ctx context.Context, agentEmail string) (*mongo.DeleteResult, error)
}

type mongoPropertyRepository struct {
	coll *mongo.Collection
}

func NewPropertyRepository(coll *mongo.Collection) PropertyRepository {
	return &mongoPropertyRepository{coll: coll}
}

func (r *mongoPropertyRepository) Insert(ctx context.Context, p model.Property) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, p)
}

func (r *mongoPropertyRepository) FindAll(ctx context.Context) ([]model.Property, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoPropertyRepository) FindByAgent(ctx context.Context, agentEmail string) ([]model.Property, error) {
	return r.find(ctx, bson.M{"agent_email": agentEmail})
}

func (r *mongoPropertyRepository) find(ctx context.Context, filter any) ([]model.Property, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var props []model.Property
	if err := cursor.All(ctx, &props); err != nil {
		return nil, err
	}
	return props, nil
}

func (r *mongoPropertyRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Property, error) {
	var p model.Property
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPropertyRepository) Replace(ctx context.Context, id bson.ObjectID, p model.Property) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"title":       p.Title,
		"location":    p.Location,
		"image":       p.Image,
		"description": p.Description,
		"price.start": p.Price.Start,
		"price.end":   p.Price.End,
	}}
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (r *mongoPropertyRepository) SetVerification(ctx context.Context, id bson.ObjectID, verification string) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"verification": verification}})
}

func (r *mongoPropertyRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *mongoPropertyRepository) DeleteByAgent(ctx context.Context, agentEmail string) (*mongo.DeleteResult, error) {
	return r.coll.DeleteMany(ctx, bson.M{"agent_email": agentEmail})
}
