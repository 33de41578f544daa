package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"elystate/model"
)

type OfferRepository interface {
	Insert(ctx context.Context, offer model.Offer) (*mongo.InsertOneResult, error)
	FindByBuyer(ctx context.Context, buyerEmail string) ([]model.Offer, error)
	FindByAgent(ctx context.Context, agentEmail string) ([]model.Offer, error)
	// FindByID returns (nil, nil) when no document matches.
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Offer, error)
	SetStatus(ctx context.Context, id bson.ObjectID, status string) (*mongo.UpdateResult, error)
}

type mongoOfferRepository struct {
	coll *mongo.Collection
}

func NewOfferRepository(coll *mongo.Collection) OfferRepository {
	return &mongoOfferRepository{coll: coll}
}

func (r *mongoOfferRepository) Insert(ctx context.Context, offer model.Offer) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, offer)
}

func (r *mongoOfferRepository) FindByBuyer(ctx context.Context, buyerEmail string) ([]model.Offer, error) {
	return r.find(ctx, bson.M{"buyer_email": buyerEmail})
}

func (r *mongoOfferRepository) FindByAgent(ctx context.Context, agentEmail string) ([]model.Offer, error) {
	return r.find(ctx, bson.M{"agent_email": agentEmail})
}

func (r *mongoOfferRepository) find(ctx context.Context, filter any) ([]model.Offer, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offers []model.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *mongoOfferRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Offer, error) {
	var o model.Offer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *mongoOfferRepository) SetStatus(ctx context.Context, id bson.ObjectID, status string) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
}
