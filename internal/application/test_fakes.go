package application

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
)

// In-memory repository fakes used by the service and handler tests in place
// of a running MongoDB. They mirror the store's single-document atomicity by
// serializing every operation behind a mutex.

type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[string]*entity.User)}
}

func (f *FakeUserRepository) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.FavoriteMovies == nil {
		u.FavoriteMovies = []primitive.ObjectID{}
	}
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func (f *FakeUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *FakeUserRepository) FindAll(_ context.Context) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *FakeUserRepository) Update(_ context.Context, username string, in *entity.User) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.Username != username {
		if _, taken := f.users[in.Username]; taken {
			return nil, repository.ErrDuplicateUsername
		}
		delete(f.users, username)
	}
	u.Username = in.Username
	u.Password = in.Password
	u.Email = in.Email
	if in.Birthday != nil {
		u.Birthday = in.Birthday
	}
	f.users[u.Username] = u
	cp := *u
	return &cp, nil
}

func (f *FakeUserRepository) Delete(_ context.Context, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[username]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, username)
	return nil
}

func (f *FakeUserRepository) AddFavorite(_ context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := false
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			found = true
			break
		}
	}
	if !found {
		u.FavoriteMovies = append(u.FavoriteMovies, movieID)
	}
	cp := *u
	return &cp, nil
}

func (f *FakeUserRepository) RemoveFavorite(_ context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	kept := u.FavoriteMovies[:0]
	for _, id := range u.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	u.FavoriteMovies = kept
	cp := *u
	return &cp, nil
}

var _ repository.UserRepository = (*FakeUserRepository)(nil)

type FakeMovieRepository struct {
	mu     sync.Mutex
	movies []entity.Movie
}

func NewFakeMovieRepository(movies ...entity.Movie) *FakeMovieRepository {
	for i := range movies {
		if movies[i].ID.IsZero() {
			movies[i].ID = primitive.NewObjectID()
		}
	}
	return &FakeMovieRepository{movies: movies}
}

func (f *FakeMovieRepository) Insert(_ context.Context, m *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	f.movies = append(f.movies, *m)
	return nil
}

func (f *FakeMovieRepository) FindAll(_ context.Context) ([]entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Movie, len(f.movies))
	copy(out, f.movies)
	return out, nil
}

func (f *FakeMovieRepository) FindByTitle(_ context.Context, title string) (*entity.Movie, error) {
	return f.findOne(func(m entity.Movie) bool { return m.Title == title })
}

func (f *FakeMovieRepository) FindByDirector(_ context.Context, name string) (*entity.Movie, error) {
	return f.findOne(func(m entity.Movie) bool { return m.Director.Name == name })
}

func (f *FakeMovieRepository) FindByGenre(_ context.Context, name string) (*entity.Movie, error) {
	return f.findOne(func(m entity.Movie) bool { return m.Genre.Name == name })
}

func (f *FakeMovieRepository) findOne(match func(entity.Movie) bool) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.movies {
		if match(m) {
			cp := m
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

var _ repository.MovieRepository = (*FakeMovieRepository)(nil)
