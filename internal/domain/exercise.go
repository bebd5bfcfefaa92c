package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one logged exercise entry belonging to a user.
//
// UserID is an application-level reference: the service layer verifies the
// user exists before an entry is inserted, the store itself enforces nothing.
// The entry's own ID is never surfaced through the API; responses carry the
// owning user's id instead.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID      primitive.ObjectID `bson:"uid" json:"-"`
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"` // minutes
	Date        time.Time          `bson:"date" json:"date"`
	CreatedAt   time.Time          `bson:"createdAt" json:"-"`
}
