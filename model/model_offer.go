package model

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
)

func ValidOfferStatus(s string) bool {
	return s == OfferPending || s == OfferAccepted || s == OfferRejected
}

type Offer struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PropertyID  string        `bson:"property_id" json:"property_id"`
	Title       string        `bson:"title,omitempty" json:"title,omitempty"`
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`
	BuyerEmail  string        `bson:"buyer_email" json:"buyer_email"`
	BuyerName   string        `bson:"buyer_name,omitempty" json:"buyer_name,omitempty"`
	AgentEmail  string        `bson:"agent_email" json:"agent_email"`
	OfferAmount float64       `bson:"offer_amount,omitempty" json:"offer_amount,omitempty"`
	Status      string        `bson:"status" json:"status"`
	BuyingDate  string        `bson:"buying_date,omitempty" json:"buying_date,omitempty"`
}
