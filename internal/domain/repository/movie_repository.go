package repository

import (
	"context"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
)

// MovieRepository defines the interface for movie-related database operations.
type MovieRepository interface {
	Insert(ctx context.Context, m *entity.Movie) error
	FindAll(ctx context.Context) ([]entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	FindByDirector(ctx context.Context, name string) (*entity.Movie, error)
	FindByGenre(ctx context.Context, name string) (*entity.Movie, error)
}
