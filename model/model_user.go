package model

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	RoleGuest = "guest"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleGuest || r == RoleAgent || r == RoleAdmin
}

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string        `bson:"email" json:"email"`
	Name      string        `bson:"name,omitempty" json:"name,omitempty"`
	Photo     string        `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string        `bson:"role" json:"role"`
	Timestamp int64         `bson:"timestamp" json:"timestamp"`
}
