package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/helpers"
)

// ErrInvalidCredentials covers both unknown-username and wrong-password
// rejections so a login failure never reveals whether the account exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

// UserInput carries the validated registration/update fields.
type UserInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// Register hashes the password and creates the user. The plaintext password
// never reaches the repository.
func (s *UserService) Register(ctx context.Context, in UserInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:       in.Username,
		Password:       hash,
		Email:          in.Email,
		Birthday:       in.Birthday,
		FavoriteMovies: []primitive.ObjectID{},
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a signed bearer token.
func (s *UserService) Login(ctx context.Context, username, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.FindByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateToken(u.ID.Hex(), u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("generate token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, username string) (*entity.User, error) {
	return s.Repo.FindByUsername(ctx, username)
}

// Update replaces the mutable fields of the user keyed by username,
// re-hashing the supplied password.
func (s *UserService) Update(ctx context.Context, username string, in UserInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username: in.Username,
		Password: hash,
		Email:    in.Email,
		Birthday: in.Birthday,
	}
	return s.Repo.Update(ctx, username, u)
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	return s.Repo.Delete(ctx, username)
}

func (s *UserService) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	return s.Repo.AddFavorite(ctx, username, movieID)
}

func (s *UserService) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	return s.Repo.RemoveFavorite(ctx, username, movieID)
}
