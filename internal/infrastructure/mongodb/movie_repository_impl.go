package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
)

type MovieRepository struct {
	db *mongo.Database
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) coll() *mongo.Collection {
	return r.db.Collection(moviesCollection)
}

func (r *MovieRepository) Insert(ctx context.Context, m *entity.Movie) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	_, err := r.coll().InsertOne(ctx, m)
	return err
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]entity.Movie, error) {
	cur, err := r.coll().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	movies := make([]entity.Movie, 0)
	if err := cur.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return r.findOne(ctx, bson.M{"Title": title})
}

func (r *MovieRepository) FindByDirector(ctx context.Context, name string) (*entity.Movie, error) {
	return r.findOne(ctx, bson.M{"Director.Name": name})
}

func (r *MovieRepository) FindByGenre(ctx context.Context, name string) (*entity.Movie, error) {
	return r.findOne(ctx, bson.M{"Genre.Name": name})
}

func (r *MovieRepository) findOne(ctx context.Context, filter bson.M) (*entity.Movie, error) {
	m := &entity.Movie{}
	if err := r.coll().FindOne(ctx, filter).Decode(m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

var _ repository.MovieRepository = (*MovieRepository)(nil)
