package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishabh-bijalwan12/vibe-share/models"
)

// UserStore is the document-store surface for the users collection. The
// relationship mutations are set-inserts and set-removes on single documents;
// the follow/unfollow precondition checks live in the handlers, so a
// read-then-write race between identical requests is possible and accepted.
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	Insert(ctx context.Context, user models.User) (models.User, error)

	AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) (models.User, error)
	RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) (models.User, error)
	AddFollowing(ctx context.Context, userID, followedID primitive.ObjectID) (models.User, error)
	RemoveFollowing(ctx context.Context, userID, followedID primitive.ObjectID) (models.User, error)
}
