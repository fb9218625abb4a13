package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// AddFavorite and RemoveFavorite are idempotent set operations, atomic at the
// single-document level; both return the updated document.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, username string, u *entity.User) (*entity.User, error)
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error)
}
