package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/chrisspenceratx/myFlix-server-5b/config"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/application"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/infrastructure/mongodb"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/helpers"
)

var movies = []entity.Movie{
	{
		Title:       "The Godfather",
		Description: "The aging patriarch of an organized crime dynasty transfers control of his empire to his reluctant son.",
		Genre:       entity.Genre{Name: "Crime", Description: "Stories centered on criminal enterprises and their consequences."},
		Director:    entity.Director{Name: "Francis Ford Coppola", Bio: "American film director, producer, and screenwriter."},
		Actors:      []string{"Marlon Brando", "Al Pacino", "James Caan"},
		ImageURL:    "https://example.com/posters/the-godfather.jpg",
		Featured:    true,
	},
	{
		Title:       "Spirited Away",
		Description: "A young girl wanders into a world ruled by gods and witches where humans are changed into beasts.",
		Genre:       entity.Genre{Name: "Animation", Description: "Animated feature films."},
		Director:    entity.Director{Name: "Hayao Miyazaki", Bio: "Japanese animator, director, and co-founder of Studio Ghibli."},
		Actors:      []string{"Rumi Hiiragi", "Miyu Irino"},
		ImageURL:    "https://example.com/posters/spirited-away.jpg",
		Featured:    true,
	},
	{
		Title:       "Alien",
		Description: "The crew of a commercial spacecraft encounters a deadly lifeform after investigating an unknown transmission.",
		Genre:       entity.Genre{Name: "Horror", Description: "Films intended to frighten and unsettle."},
		Director:    entity.Director{Name: "Ridley Scott", Bio: "English filmmaker known for atmospheric science fiction."},
		Actors:      []string{"Sigourney Weaver", "Tom Skerritt"},
		ImageURL:    "https://example.com/posters/alien.jpg",
		Featured:    false,
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	movieRepo := mongodb.NewMovieRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	movieSvc := application.NewMovieService(movieRepo, nil, nil, cfg.ESMoviesIndex, cfg.MovieCacheTTL, nil)
	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		if es, esErr := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass); esErr == nil {
			movieSvc.ES = es
		}
	}

	seeded := 0
	for i := range movies {
		m := movies[i]
		if _, err := movieRepo.FindByTitle(ctx, m.Title); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Fatalf("failed to check movie %q: %v", m.Title, err)
		}
		if err := movieRepo.Insert(ctx, &m); err != nil {
			log.Fatalf("failed to seed movie %q: %v", m.Title, err)
		}
		_ = movieSvc.Index(ctx, &m)
		seeded++
	}
	fmt.Printf("seeded %d movies\n", seeded)

	// Demo account
	username := "demoUser"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	u := &entity.User{Username: username, Password: hash, Email: "demo@example.com"}
	if err := userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			fmt.Printf("user %s already present\n", username)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: username=%s password=%s\n", username, password)
}
