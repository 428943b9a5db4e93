package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishabh-bijalwan12/vibe-share/models"
)

// MemoryUserStore is an in-memory UserStore mirroring the Mongo update
// operator semantics ($addToSet never duplicates, $pull removes every match).
// It exists for tests and local development without a database.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return copyUser(user), nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryUserStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []models.User
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			users = append(users, copyUser(user))
		}
	}
	return users, nil
}

func (s *MemoryUserStore) Insert(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = copyUser(user)
	return user, nil
}

func (s *MemoryUserStore) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) (models.User, error) {
	return s.update(userID, func(u *models.User) {
		u.Followers = addToSet(u.Followers, followerID)
	})
}

func (s *MemoryUserStore) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) (models.User, error) {
	return s.update(userID, func(u *models.User) {
		u.Followers = pull(u.Followers, followerID)
	})
}

func (s *MemoryUserStore) AddFollowing(ctx context.Context, userID, followedID primitive.ObjectID) (models.User, error) {
	return s.update(userID, func(u *models.User) {
		u.Following = addToSet(u.Following, followedID)
	})
}

func (s *MemoryUserStore) RemoveFollowing(ctx context.Context, userID, followedID primitive.ObjectID) (models.User, error) {
	return s.update(userID, func(u *models.User) {
		u.Following = pull(u.Following, followedID)
	})
}

func (s *MemoryUserStore) update(id primitive.ObjectID, mutate func(*models.User)) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	mutate(&user)
	s.users[id] = user
	return copyUser(user), nil
}

// MemoryPostStore is the in-memory PostStore counterpart. Posts keep
// insertion order, matching an unfiltered collection scan.
type MemoryPostStore struct {
	mu    sync.Mutex
	posts []models.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{}
}

func (s *MemoryPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.posts {
		if post.ID == id {
			return copyPost(post), nil
		}
	}
	return models.Post{}, ErrNotFound
}

func (s *MemoryPostStore) FindAll(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, copyPost(post))
	}
	return posts, nil
}

func (s *MemoryPostStore) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var posts []models.Post
	for _, post := range s.posts {
		if post.PostedBy == authorID {
			posts = append(posts, copyPost(post))
		}
	}
	return posts, nil
}

func (s *MemoryPostStore) Insert(ctx context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, copyPost(post))
	return post, nil
}

func (s *MemoryPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, post := range s.posts {
		if post.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryPostStore) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error) {
	return s.update(postID, func(p *models.Post) {
		p.Likes = addToSet(p.Likes, userID)
	})
}

func (s *MemoryPostStore) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error) {
	return s.update(postID, func(p *models.Post) {
		p.Likes = pull(p.Likes, userID)
	})
}

func (s *MemoryPostStore) AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (models.Post, error) {
	return s.update(postID, func(p *models.Post) {
		p.Comments = append(p.Comments, comment)
	})
}

func (s *MemoryPostStore) update(id primitive.ObjectID, mutate func(*models.Post)) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, post := range s.posts {
		if post.ID == id {
			mutate(&post)
			s.posts[i] = post
			return copyPost(post), nil
		}
	}
	return models.Post{}, ErrNotFound
}

func addToSet(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func pull(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func copyUser(u models.User) models.User {
	u.Followers = append([]primitive.ObjectID(nil), u.Followers...)
	u.Following = append([]primitive.ObjectID(nil), u.Following...)
	return u
}

func copyPost(p models.Post) models.Post {
	p.Likes = append([]primitive.ObjectID(nil), p.Likes...)
	p.Comments = append([]models.Comment(nil), p.Comments...)
	return p
}
