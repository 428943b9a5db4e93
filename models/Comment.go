package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is an entry in a post's comments array, stored in insertion order.
type Comment struct {
	Text     string             `json:"text" bson:"text"`
	PostedBy primitive.ObjectID `json:"postedBy" bson:"postedBy"`
}

// CommentView is a Comment with the commenter resolved to {_id, name}.
type CommentView struct {
	Text     string  `json:"text"`
	PostedBy UserRef `json:"postedBy"`
}
