package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an OAuth-provisioned account. Records are upserted on every
// successful Google sign-in; there is no password credential anywhere.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	GoogleID  string             `json:"googleId" bson:"googleId"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	Picture   string             `json:"picture,omitempty" bson:"picture,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
