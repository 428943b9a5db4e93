package helper

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishabh-bijalwan12/vibe-share/models"
	"github.com/rishabh-bijalwan12/vibe-share/store"
)

// PopulatePosts resolves the author, likers and commenters of each post to
// {_id, name} refs with a single batched user fetch. Users that have gone
// missing keep their id and an empty name.
func PopulatePosts(ctx context.Context, users store.UserStore, posts []models.Post) ([]models.PostView, error) {
	ids := make(map[primitive.ObjectID]struct{})
	for _, post := range posts {
		ids[post.PostedBy] = struct{}{}
		for _, id := range post.Likes {
			ids[id] = struct{}{}
		}
		for _, comment := range post.Comments {
			ids[comment.PostedBy] = struct{}{}
		}
	}

	names, err := nameIndex(ctx, users, ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, buildView(post, names))
	}
	return views, nil
}

// PopulatePost is PopulatePosts for a single post.
func PopulatePost(ctx context.Context, users store.UserStore, post models.Post) (models.PostView, error) {
	views, err := PopulatePosts(ctx, users, []models.Post{post})
	if err != nil {
		return models.PostView{}, err
	}
	return views[0], nil
}

func nameIndex(ctx context.Context, users store.UserStore, ids map[primitive.ObjectID]struct{}) (map[primitive.ObjectID]string, error) {
	list := make([]primitive.ObjectID, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	found, err := users.FindByIDs(ctx, list)
	if err != nil {
		return nil, err
	}
	names := make(map[primitive.ObjectID]string, len(found))
	for _, user := range found {
		names[user.ID] = user.Name
	}
	return names, nil
}

func buildView(post models.Post, names map[primitive.ObjectID]string) models.PostView {
	likes := make([]models.UserRef, 0, len(post.Likes))
	for _, id := range post.Likes {
		likes = append(likes, models.UserRef{ID: id, Name: names[id]})
	}
	comments := make([]models.CommentView, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, models.CommentView{
			Text:     comment.Text,
			PostedBy: models.UserRef{ID: comment.PostedBy, Name: names[comment.PostedBy]},
		})
	}
	return models.PostView{
		ID:        post.ID,
		Body:      post.Body,
		Image:     post.Image,
		Likes:     likes,
		Comments:  comments,
		PostedBy:  models.UserRef{ID: post.PostedBy, Name: names[post.PostedBy]},
		CreatedAt: post.CreatedAt,
	}
}
