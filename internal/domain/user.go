package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account that exercises are logged against.
// Usernames are not required to be unique; existing API clients depend on
// duplicate registrations succeeding.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
}
