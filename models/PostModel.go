package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a document in the posts collection. PostedBy is fixed at creation.
// Comments are append-only.
type Post struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id"`
	Body      string               `json:"body" bson:"body"`
	Image     string               `json:"image" bson:"image"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []Comment            `json:"comments" bson:"comments"`
	PostedBy  primitive.ObjectID   `json:"postedBy" bson:"postedBy"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// HasLike reports whether userID is present in the post's likes.
func (p Post) HasLike(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// PostView is a Post with every user reference resolved to {_id, name}.
type PostView struct {
	ID        primitive.ObjectID `json:"_id"`
	Body      string             `json:"body"`
	Image     string             `json:"image"`
	Likes     []UserRef          `json:"likes"`
	Comments  []CommentView      `json:"comments"`
	PostedBy  UserRef            `json:"postedBy"`
	CreatedAt time.Time          `json:"createdAt"`
}
