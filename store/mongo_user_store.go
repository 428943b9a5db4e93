package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rishabh-bijalwan12/vibe-share/models"
)

// MongoUserStore backs UserStore with a MongoDB collection.
type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(coll *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{coll: coll}
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *MongoUserStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user models.User) (models.User, error) {
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) (models.User, error) {
	return s.update(ctx, userID, bson.M{"$addToSet": bson.M{"followers": followerID}})
}

func (s *MongoUserStore) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) (models.User, error) {
	return s.update(ctx, userID, bson.M{"$pull": bson.M{"followers": followerID}})
}

func (s *MongoUserStore) AddFollowing(ctx context.Context, userID, followedID primitive.ObjectID) (models.User, error) {
	return s.update(ctx, userID, bson.M{"$addToSet": bson.M{"following": followedID}})
}

func (s *MongoUserStore) RemoveFollowing(ctx context.Context, userID, followedID primitive.ObjectID) (models.User, error) {
	return s.update(ctx, userID, bson.M{"$pull": bson.M{"following": followedID}})
}

// update applies a single-document update and returns the post-update record.
func (s *MongoUserStore) update(ctx context.Context, id primitive.ObjectID, update bson.M) (models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}
