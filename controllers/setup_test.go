package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishabh-bijalwan12/vibe-share/auth"
	"github.com/rishabh-bijalwan12/vibe-share/controllers"
	"github.com/rishabh-bijalwan12/vibe-share/middlewares"
	"github.com/rishabh-bijalwan12/vibe-share/models"
	"github.com/rishabh-bijalwan12/vibe-share/routes"
	"github.com/rishabh-bijalwan12/vibe-share/store"
)

type testApp struct {
	router *gin.Engine
	users  *store.MemoryUserStore
	posts  *store.MemoryPostStore
	tokens *auth.TokenService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewMemoryUserStore()
	posts := store.NewMemoryPostStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)

	router := gin.New()
	requireAuth := middlewares.RequireAuth(tokens, users)
	routes.AuthRouter(router, controllers.NewUserController(users, tokens))
	routes.PostRouter(router, requireAuth, controllers.NewPostController(posts, users))
	routes.ConnectionRouter(router, requireAuth, controllers.NewConnectionController(users, posts))

	return &testApp{router: router, users: users, posts: posts, tokens: tokens}
}

// newUser inserts a user directly into the store and returns the record plus
// a valid bearer token.
func (a *testApp) newUser(t *testing.T, name, email string) (models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("Secret1!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hash,
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}
	if _, err := a.users.Insert(context.Background(), user); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return user, token
}

// newPost inserts a post authored by the given user.
func (a *testApp) newPost(t *testing.T, author models.User, body string) models.Post {
	t.Helper()
	post := models.Post{
		ID:        primitive.NewObjectID(),
		Body:      body,
		Image:     "https://assets.example.com/pic.jpg",
		Likes:     []primitive.ObjectID{},
		Comments:  []models.Comment{},
		PostedBy:  author.ID,
		CreatedAt: time.Now(),
	}
	if _, err := a.posts.Insert(context.Background(), post); err != nil {
		t.Fatalf("insert post: %v", err)
	}
	return post
}

// do performs a request against the test router. A non-empty token is sent as
// a bearer credential; a non-nil body is JSON-encoded.
func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
