package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishabh-bijalwan12/vibe-share/store"
)

// ConnectionController handles the social graph (follow/unfollow) and user
// profile reads.
type ConnectionController struct {
	Users store.UserStore
	Posts store.PostStore
}

func NewConnectionController(users store.UserStore, posts store.PostStore) *ConnectionController {
	return &ConnectionController{Users: users, Posts: posts}
}

type followReq struct {
	FollowID string `json:"followId"`
}

// Follow records a mutual relationship: the actor is added to the target's
// followers and the target to the actor's following. The two writes hit two
// documents and are not transactional; the target side is written first.
func (cc *ConnectionController) Follow(c *gin.Context) {
	var req followReq
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "followId is required"})
		return
	}
	followID, err := primitive.ObjectIDFromHex(req.FollowID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user := currentUser(c)
	if followID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself."})
		return
	}
	if user.IsFollowing(followID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are already following this user."})
		return
	}

	ctx := c.Request.Context()
	updatedUser, err := cc.Users.AddFollower(ctx, followID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error following the user"})
		return
	}

	updatedUserFollowing, err := cc.Users.AddFollowing(ctx, user.ID, followID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the following list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedUser": updatedUser, "updatedUserFollowing": updatedUserFollowing})
}

// Unfollow removes the mutual relationship recorded by Follow.
func (cc *ConnectionController) Unfollow(c *gin.Context) {
	var req followReq
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "followId is required"})
		return
	}
	followID, err := primitive.ObjectIDFromHex(req.FollowID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user := currentUser(c)
	if !user.IsFollowing(followID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not following this user."})
		return
	}

	ctx := c.Request.Context()
	updatedUser, err := cc.Users.RemoveFollower(ctx, followID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unfollowing the user"})
		return
	}

	updatedUserFollowing, err := cc.Users.RemoveFollowing(ctx, user.ID, followID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the following list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedUser": updatedUser, "updatedUserFollowing": updatedUserFollowing})
}

// UserProfile returns a user record plus every post they authored.
func (cc *ConnectionController) UserProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("Id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx := c.Request.Context()
	user, err := cc.Users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	posts, err := cc.Posts.FindByAuthor(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user, "posts": posts})
}

// UserDetails returns the authenticated user's own record.
func (cc *ConnectionController) UserDetails(c *gin.Context) {
	cc.userDetails(c, currentUser(c).ID)
}

// UserDetailsByID returns any user's record by id.
func (cc *ConnectionController) UserDetailsByID(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	cc.userDetails(c, userID)
}

func (cc *ConnectionController) userDetails(c *gin.Context, id primitive.ObjectID) {
	user, err := cc.Users.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user details"})
		return
	}
	c.JSON(http.StatusOK, user)
}
