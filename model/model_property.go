package model

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

func ValidVerification(v string) bool {
	return v == VerificationPending || v == VerificationVerified || v == VerificationRejected
}

// PriceRange is the asking range in whole currency units.
type PriceRange struct {
	Start float64 `bson:"start" json:"start"`
	End   float64 `bson:"end" json:"end"`
}

type Property struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string        `bson:"title" json:"title"`
	Location     string        `bson:"location" json:"location"`
	Image        string        `bson:"image,omitempty" json:"image,omitempty"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Price        PriceRange    `bson:"price" json:"price"`
	AgentEmail   string        `bson:"agent_email" json:"agent_email"`
	AgentName    string        `bson:"agent_name,omitempty" json:"agent_name,omitempty"`
	AgentImage   string        `bson:"agent_image,omitempty" json:"agent_image,omitempty"`
	Verification string        `bson:"verification" json:"verification"`
}
