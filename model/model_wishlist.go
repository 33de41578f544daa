package model

import "go.mongodb.org/mongo-driver/v2/bson"

// WishlistEntry bookmarks one property for one user. The (property_id,
// user_email) pair is unique, backed by an index created at startup.
type WishlistEntry struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PropertyID  string        `bson:"property_id" json:"property_id"`
	UserEmail   string        `bson:"user_email" json:"user_email"`
	Title       string        `bson:"title,omitempty" json:"title,omitempty"`
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	Price       *PriceRange   `bson:"price,omitempty" json:"price,omitempty"`
	AgentEmail  string        `bson:"agent_email,omitempty" json:"agent_email,omitempty"`
}
