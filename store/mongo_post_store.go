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

// MongoPostStore backs PostStore with a MongoDB collection.
type MongoPostStore struct {
	coll *mongo.Collection
}

func NewMongoPostStore(coll *mongo.Collection) *MongoPostStore {
	return &MongoPostStore{coll: coll}
}

func (s *MongoPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var post models.Post
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	return post, err
}

func (s *MongoPostStore) FindAll(ctx context.Context) ([]models.Post, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoPostStore) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Post, error) {
	return s.find(ctx, bson.M{"postedBy": authorID})
}

func (s *MongoPostStore) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoPostStore) Insert(ctx context.Context, post models.Post) (models.Post, error) {
	if _, err := s.coll.InsertOne(ctx, post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (s *MongoPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPostStore) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error) {
	return s.update(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (s *MongoPostStore) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error) {
	return s.update(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (s *MongoPostStore) AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (models.Post, error) {
	return s.update(ctx, postID, bson.M{"$push": bson.M{"comments": comment}})
}

func (s *MongoPostStore) update(ctx context.Context, id primitive.ObjectID, update bson.M) (models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	return post, err
}
