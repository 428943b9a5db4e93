package controllers_test

import (
	"context"
	"net/http"
	"testing"
)

func TestFollowRecordsBothSides(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := app.newUser(t, "Alice", "alice@x.com")
	bob, _ := app.newUser(t, "Bob", "bob@x.com")

	w := app.do(t, http.MethodPut, "/follow", aliceToken, map[string]string{"followId": bob.ID.Hex()})
	if w.Code != http.StatusOK {
		t.Fatalf("follow status = %d (%s)", w.Code, w.Body.String())
	}

	storedBob, _ := app.users.FindByID(context.Background(), bob.ID)
	storedAlice, _ := app.users.FindByID(context.Background(), alice.ID)
	if len(storedBob.Followers) != 1 || storedBob.Followers[0] != alice.ID {
		t.Errorf("bob.followers = %v, want [alice]", storedBob.Followers)
	}
	if len(storedAlice.Following) != 1 || storedAlice.Following[0] != bob.ID {
		t.Errorf("alice.following = %v, want [bob]", storedAlice.Following)
	}
}

func TestFollowTwiceRejected(t *testing.T) {
	app := setupTestApp(t)
	_, aliceToken := app.newUser(t, "Alice", "alice@x.com")
	bob, _ := app.newUser(t, "Bob", "bob@x.com")

	app.do(t, http.MethodPut, "/follow", aliceToken, map[string]string{"followId": bob.ID.Hex()})
	w := app.do(t, http.MethodPut, "/follow", aliceToken, map[string]string{"followId": bob.ID.Hex()})
	if w.Code != http.StatusBadRequest {
		t.Errorf("second follow status = %d, want 400", w.Code)
	}

	storedBob, _ := app.users.FindByID(context.Background(), bob.ID)
	if len(storedBob.Followers) != 1 {
		t.Errorf("bob.followers size = %d, want 1", len(storedBob.Followers))
	}
}

func TestUnfollowRestoresBothSides(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := app.newUser(t, "Alice", "alice@x.com")
	bob, _ := app.newUser(t, "Bob", "bob@x.com")

	app.do(t, http.MethodPut, "/follow", aliceToken, map[string]string{"followId": bob.ID.Hex()})
	w := app.do(t, http.MethodPut, "/unfollow", aliceToken, map[string]string{"followId": bob.ID.Hex()})
	if w.Code != http.StatusOK {
		t.Fatalf("unfollow status = %d (%s)", w.Code, w.Body.String())
	}

	storedBob, _ := app.users.FindByID(context.Background(), bob.ID)
	storedAlice, _ := app.users.FindByID(context.Background(), alice.ID)
	if len(storedBob.Followers) != 0 {
		t.Errorf("bob.followers after unfollow = %v, want empty", storedBob.Followers)
	}
	if len(storedAlice.Following) != 0 {
		t.Errorf("alice.following after unfollow = %v, want empty", storedAlice.Following)
	}
}

func TestUnfollowWithoutFollow(t *testing.T) {
	app := setupTestApp(t)
	_, aliceToken := app.newUser(t, "Alice", "alice@x.com")
	bob, _ := app.newUser(t, "Bob", "bob@x.com")

	w := app.do(t, http.MethodPut, "/unfollow", aliceToken, map[string]string{"followId": bob.ID.Hex()})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unfollow without follow status = %d, want 400", w.Code)
	}
}

func TestFollowSelfRejected(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := app.newUser(t, "Alice", "alice@x.com")

	w := app.do(t, http.MethodPut, "/follow", aliceToken, map[string]string{"followId": alice.ID.Hex()})
	if w.Code != http.StatusBadRequest {
		t.Errorf("self-follow status = %d, want 400", w.Code)
	}

	stored, _ := app.users.FindByID(context.Background(), alice.ID)
	if len(stored.Followers) != 0 || len(stored.Following) != 0 {
		t.Errorf("self-follow mutated lists: followers=%v following=%v", stored.Followers, stored.Following)
	}
}

func TestFollowUnknownUser(t *testing.T) {
	app := setupTestApp(t)
	_, aliceToken := app.newUser(t, "Alice", "alice@x.com")

	w := app.do(t, http.MethodPut, "/follow", aliceToken, map[string]string{"followId": "65b2f0000000000000000000"})
	if w.Code != http.StatusNotFound {
		t.Errorf("follow unknown user status = %d, want 404", w.Code)
	}
}

func TestUserProfile(t *testing.T) {
	app := setupTestApp(t)
	alice, _ := app.newUser(t, "Alice", "alice@x.com")
	_, bobToken := app.newUser(t, "Bob", "bob@x.com")
	app.newPost(t, alice, "hello")

	w := app.do(t, http.MethodGet, "/userprofile/"+alice.ID.Hex(), bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("userprofile status = %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
		Posts []struct {
			Body string `json:"body"`
		} `json:"posts"`
	}
	decodeBody(t, w, &resp)
	if resp.Data.Name != "Alice" {
		t.Errorf("profile name = %q, want Alice", resp.Data.Name)
	}
	if len(resp.Posts) != 1 || resp.Posts[0].Body != "hello" {
		t.Errorf("profile posts = %+v, want the one post", resp.Posts)
	}
}

func TestUserProfileUnknownUser(t *testing.T) {
	app := setupTestApp(t)
	_, token := app.newUser(t, "Alice", "alice@x.com")

	w := app.do(t, http.MethodGet, "/userprofile/65b2f0000000000000000000", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown profile status = %d, want 404", w.Code)
	}
}

func TestUserDetails(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := app.newUser(t, "Alice", "alice@x.com")
	bob, _ := app.newUser(t, "Bob", "bob@x.com")

	w := app.do(t, http.MethodGet, "/userdetails", aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("userdetails status = %d (%s)", w.Code, w.Body.String())
	}
	var own struct {
		ID string `json:"_id"`
	}
	decodeBody(t, w, &own)
	if own.ID != alice.ID.Hex() {
		t.Errorf("userdetails id = %s, want %s", own.ID, alice.ID.Hex())
	}

	w = app.do(t, http.MethodGet, "/userdetails/"+bob.ID.Hex(), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("userdetails by id status = %d (%s)", w.Code, w.Body.String())
	}
	var other struct {
		Name string `json:"name"`
	}
	decodeBody(t, w, &other)
	if other.Name != "Bob" {
		t.Errorf("userdetails name = %q, want Bob", other.Name)
	}
}
