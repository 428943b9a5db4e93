package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishabh-bijalwan12/vibe-share/models"
)

// PostStore is the document-store surface for the posts collection. AddLike
// is a set-insert and RemoveLike a set-remove, so both are idempotent at the
// storage layer; AddComment appends, preserving insertion order.
type PostStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Post, error)
	Insert(ctx context.Context, post models.Post) (models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	AddLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error)
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error)
	AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (models.Post, error)
}
