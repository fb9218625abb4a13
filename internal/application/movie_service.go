package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/helpers"
)

const movieListCacheKey = "movies:all"

// MovieService reads the movie collection. Redis and Elasticsearch are
// optional; a nil client degrades to no cache / no search.
type MovieService struct {
	Repo          repository.MovieRepository
	Redis         *redis.Client
	Logger        *logrus.Logger
	ES            *elasticsearch.Client
	ESMoviesIndex string
	CacheTTL      time.Duration
}

func NewMovieService(repo repository.MovieRepository, rdb *redis.Client, es *elasticsearch.Client, esIndex string, cacheTTL time.Duration, logger *logrus.Logger) *MovieService {
	return &MovieService{
		Repo:          repo,
		Redis:         rdb,
		Logger:        logger,
		ES:            es,
		ESMoviesIndex: esIndex,
		CacheTTL:      cacheTTL,
	}
}

// List returns all movies, served from the Redis cache when warm.
func (s *MovieService) List(ctx context.Context) ([]entity.Movie, error) {
	if s.Redis != nil {
		var cached []entity.Movie
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, movieListCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	movies, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, movieListCacheKey, movies, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("movie cache write failed")
		}
	}
	return movies, nil
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return s.Repo.FindByTitle(ctx, title)
}

// GetDirector returns the director subdocument of any movie directed by name.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*entity.Director, error) {
	m, err := s.Repo.FindByDirector(ctx, name)
	if err != nil {
		return nil, err
	}
	return &m.Director, nil
}

// GetGenre returns the genre subdocument of any movie in the named genre.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*entity.Genre, error) {
	m, err := s.Repo.FindByGenre(ctx, name)
	if err != nil {
		return nil, err
	}
	return &m.Genre, nil
}

// Index writes a movie document to Elasticsearch. Used by the seeder.
func (s *MovieService) Index(ctx context.Context, m *entity.Movie) error {
	if s.ES == nil || s.ESMoviesIndex == "" {
		return nil
	}
	doc := map[string]any{
		"title":       m.Title,
		"description": m.Description,
		"genre":       m.Genre.Name,
		"director":    m.Director.Name,
		"featured":    m.Featured,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESMoviesIndex, DocumentID: m.ID.Hex(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("movie_id", m.ID.Hex()).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("movie_id", m.ID.Hex()).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query on title and description.
func (s *MovieService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESMoviesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "director", "genre"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESMoviesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
