package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the users collection. The password field holds a
// bcrypt hash and is never serialized to JSON.
type User struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id"`
	Name      string               `json:"name" bson:"name" validate:"required"`
	Email     string               `json:"email" bson:"email" validate:"required,email"`
	Password  string               `json:"-" bson:"password" validate:"required"`
	Followers []primitive.ObjectID `json:"followers" bson:"followers"`
	Following []primitive.ObjectID `json:"following" bson:"following"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// IsFollowing reports whether id is present in the user's following list.
func (u User) IsFollowing(id primitive.ObjectID) bool {
	for _, f := range u.Following {
		if f == id {
			return true
		}
	}
	return false
}

// UserRef is the {_id, name} shape used when resolving authors, likers and
// commenters in post responses.
type UserRef struct {
	ID   primitive.ObjectID `json:"_id"`
	Name string             `json:"name"`
}
