package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishabh-bijalwan12/vibe-share/helper"
	"github.com/rishabh-bijalwan12/vibe-share/middlewares"
	"github.com/rishabh-bijalwan12/vibe-share/models"
	"github.com/rishabh-bijalwan12/vibe-share/store"
)

// PostController handles post creation, feeds, likes, comments and deletion.
type PostController struct {
	Posts store.PostStore
	Users store.UserStore
}

func NewPostController(posts store.PostStore, users store.UserStore) *PostController {
	return &PostController{Posts: posts, Users: users}
}

func currentUser(c *gin.Context) models.User {
	return c.MustGet(middlewares.UserKey).(models.User)
}

type createPostReq struct {
	Body     string `json:"body"`
	ImageURL string `json:"imageURL"`
}

type postIDReq struct {
	PostID string `json:"postId"`
}

type commentReq struct {
	PostID  string `json:"postId"`
	Comment string `json:"comment"`
}

// CreatePost stores a new post. The image is already hosted externally; only
// its URL is recorded. The author is the authenticated user and never
// changes.
func (pc *PostController) CreatePost(c *gin.Context) {
	var req createPostReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Body == "" || req.ImageURL == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "All fields are required"})
		return
	}

	user := currentUser(c)
	post := models.Post{
		ID:        primitive.NewObjectID(),
		Body:      req.Body,
		Image:     req.ImageURL,
		Likes:     []primitive.ObjectID{},
		Comments:  []models.Comment{},
		PostedBy:  user.ID,
		CreatedAt: time.Now(),
	}

	result, err := pc.Posts.Insert(c.Request.Context(), post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

// AllPosts returns every post with author, liker and commenter names
// resolved.
func (pc *PostController) AllPosts(c *gin.Context) {
	ctx := c.Request.Context()
	posts, err := pc.Posts.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	views, err := helper.PopulatePosts(ctx, pc.Users, posts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// MyPosts returns the authenticated user's posts.
func (pc *PostController) MyPosts(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	posts, err := pc.Posts.FindByAuthor(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	views, err := helper.PopulatePosts(ctx, pc.Users, posts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// Like adds the authenticated user to a post's likes. Liking a post twice is
// rejected, so a like is idempotent in effect.
func (pc *PostController) Like(c *gin.Context) {
	pc.updateLikes(c, true)
}

// Unlike removes the authenticated user from a post's likes.
func (pc *PostController) Unlike(c *gin.Context) {
	pc.updateLikes(c, false)
}

func (pc *PostController) updateLikes(c *gin.Context, like bool) {
	var req postIDReq
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID is required"})
		return
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	ctx := c.Request.Context()
	user := currentUser(c)

	post, err := pc.Posts.FindByID(ctx, postID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	var updated models.Post
	if like {
		if post.HasLike(user.ID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "You have already liked this post."})
			return
		}
		updated, err = pc.Posts.AddLike(ctx, postID, user.ID)
	} else {
		if !post.HasLike(user.ID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "You have not liked this post yet."})
			return
		}
		updated, err = pc.Posts.RemoveLike(ctx, postID, user.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	view, err := helper.PopulatePost(ctx, pc.Users, updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Comment appends a comment to a post. Comments keep insertion order and are
// never edited or removed.
func (pc *PostController) Comment(c *gin.Context) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == "" || req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID and comment are required."})
		return
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found."})
		return
	}

	ctx := c.Request.Context()
	user := currentUser(c)

	comment := models.Comment{Text: req.Comment, PostedBy: user.ID}
	updated, err := pc.Posts.AddComment(ctx, postID, comment)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found."})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	view, err := helper.PopulatePost(ctx, pc.Users, updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeletePost removes a post permanently. Only the author may delete it.
func (pc *PostController) DeletePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	ctx := c.Request.Context()
	user := currentUser(c)

	post, err := pc.Posts.FindByID(ctx, postID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if post.PostedBy != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this post"})
		return
	}

	if err := pc.Posts.Delete(ctx, postID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
