package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/helpers"
)

func newUserService() (*UserService, *FakeUserRepository) {
	repo := NewFakeUserRepository()
	jwtm := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(repo, jwtm, nil), repo
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, _ := newUserService()

	u, err := svc.Register(context.Background(), UserInput{Username: "abcde", Password: "x", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Password == "x" {
		t.Error("stored password must not equal plaintext")
	}
	if !helpers.CompareHashAndPassword(u.Password, "x") {
		t.Error("stored hash should verify against the plaintext")
	}
	if u.ID.IsZero() {
		t.Error("expected an id to be assigned")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, UserInput{Username: "abcde", Password: "x", Email: "a@b.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Register(ctx, UserInput{Username: "abcde", Password: "y", Email: "c@d.com"})
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, UserInput{Username: "abcde", Password: "secret1", Email: "a@b.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, token, exp, err := svc.Login(ctx, "abcde", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if u.Username != "abcde" {
		t.Errorf("expected user 'abcde', got '%s'", u.Username)
	}
	if exp.Before(time.Now()) {
		t.Error("expected a future expiry")
	}

	claims, err := svc.JWT.ParseToken(token)
	if err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
	if claims.Username != "abcde" {
		t.Errorf("expected claim username 'abcde', got '%s'", claims.Username)
	}
	if claims.UserID != u.ID.Hex() {
		t.Errorf("expected claim uid '%s', got '%s'", u.ID.Hex(), claims.UserID)
	}
}

func TestLogin_GenericRejection(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, UserInput{Username: "abcde", Password: "secret1", Email: "a@b.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, _, errWrongPassword := svc.Login(ctx, "abcde", "nope")
	_, _, _, errUnknownUser := svc.Login(ctx, "ghost", "nope")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownUser, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", errUnknownUser)
	}
	// both branches must be indistinguishable to the caller
	if errWrongPassword.Error() != errUnknownUser.Error() {
		t.Error("wrong-password and unknown-user rejections should look identical")
	}
}

func TestUpdate_RehashesPassword(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, UserInput{Username: "abcde", Password: "old", Email: "a@b.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := svc.Update(ctx, "abcde", UserInput{Username: "abcde", Password: "newpass", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Password == "newpass" {
		t.Error("updated password must be hashed")
	}
	if !helpers.CompareHashAndPassword(u.Password, "newpass") {
		t.Error("updated hash should verify against new plaintext")
	}
	if _, _, _, err := svc.Login(ctx, "abcde", "old"); err == nil {
		t.Error("old password should no longer work after update")
	}
}

func TestUpdate_UnknownUser(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Update(context.Background(), "ghost", UserInput{Username: "ghost", Password: "x", Email: "a@b.com"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddFavorite_Idempotent(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, UserInput{Username: "abcde", Password: "x", Email: "a@b.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	movieID := primitive.NewObjectID()

	u1, err := svc.AddFavorite(ctx, "abcde", movieID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u2, err := svc.AddFavorite(ctx, "abcde", movieID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(u1.FavoriteMovies) != 1 || len(u2.FavoriteMovies) != 1 {
		t.Errorf("expected one favorite after repeated add, got %d then %d", len(u1.FavoriteMovies), len(u2.FavoriteMovies))
	}
	if u2.FavoriteMovies[0] != movieID {
		t.Error("favorite id mismatch")
	}
}

func TestRemoveFavorite_AbsentIsNoOp(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, UserInput{Username: "abcde", Password: "x", Email: "a@b.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kept := primitive.NewObjectID()
	if _, err := svc.AddFavorite(ctx, "abcde", kept); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := svc.RemoveFavorite(ctx, "abcde", primitive.NewObjectID())
	if err != nil {
		t.Fatalf("removing an absent favorite should not error: %v", err)
	}
	if len(u.FavoriteMovies) != 1 || u.FavoriteMovies[0] != kept {
		t.Errorf("favorites set should be unchanged, got %v", u.FavoriteMovies)
	}
}

func TestRemoveFavorite_RemovesMember(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, UserInput{Username: "abcde", Password: "x", Email: "a@b.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	movieID := primitive.NewObjectID()
	if _, err := svc.AddFavorite(ctx, "abcde", movieID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := svc.RemoveFavorite(ctx, "abcde", movieID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.FavoriteMovies) != 0 {
		t.Errorf("expected empty favorites, got %v", u.FavoriteMovies)
	}
}
