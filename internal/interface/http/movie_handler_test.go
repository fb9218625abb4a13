package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
)

func testMovies() []entity.Movie {
	return []entity.Movie{
		{
			Title:       "Alien",
			Description: "The crew of a commercial spacecraft encounters a deadly lifeform.",
			Genre:       entity.Genre{Name: "Horror", Description: "Fiction intended to frighten."},
			Director:    entity.Director{Name: "Ridley Scott", Bio: "English filmmaker."},
			Featured:    true,
		},
		{
			Title:       "Spirited Away",
			Description: "A girl wanders into a world ruled by spirits.",
			Genre:       entity.Genre{Name: "Animation", Description: "Animated feature films."},
			Director:    entity.Director{Name: "Hayao Miyazaki", Bio: "Japanese animator and director."},
		},
	}
}

func TestMovies_RequireToken(t *testing.T) {
	env := newTestEnv(t, testMovies()...)

	w, _ := env.do(t, http.MethodGet, "/movies", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

func TestMovies_List(t *testing.T) {
	env := newTestEnv(t, testMovies()...)
	token := env.token(t, "viewer")

	w, resp := env.do(t, http.MethodGet, "/movies", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var movies []entity.Movie
	if err := json.Unmarshal(resp.Data, &movies); err != nil {
		t.Fatalf("unmarshal movies: %v", err)
	}
	if len(movies) != 2 {
		t.Errorf("expected 2 movies, got %d", len(movies))
	}
}

func TestMovies_GetByTitle(t *testing.T) {
	env := newTestEnv(t, testMovies()...)
	token := env.token(t, "viewer")

	w, resp := env.do(t, http.MethodGet, "/movies/Alien", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var m entity.Movie
	if err := json.Unmarshal(resp.Data, &m); err != nil {
		t.Fatalf("unmarshal movie: %v", err)
	}
	if m.Director.Name != "Ridley Scott" {
		t.Errorf("unexpected director: %s", m.Director.Name)
	}
}

func TestMovies_GetByTitle_NotFound(t *testing.T) {
	env := newTestEnv(t, testMovies()...)
	token := env.token(t, "viewer")

	w, resp := env.do(t, http.MethodGet, "/movies/Nothing", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp.Message != "Movie not found." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestMovies_Director(t *testing.T) {
	env := newTestEnv(t, testMovies()...)
	token := env.token(t, "viewer")

	w, resp := env.do(t, http.MethodGet, "/movies/director/Hayao%20Miyazaki", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var d entity.Director
	if err := json.Unmarshal(resp.Data, &d); err != nil {
		t.Fatalf("unmarshal director: %v", err)
	}
	if d.Bio == "" {
		t.Error("expected director bio")
	}

	w2, resp2 := env.do(t, http.MethodGet, "/movies/director/Nobody", token, nil)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w2.Code)
	}
	if resp2.Message != "Director not found." {
		t.Errorf("unexpected message: %q", resp2.Message)
	}
}

func TestMovies_Genre(t *testing.T) {
	env := newTestEnv(t, testMovies()...)
	token := env.token(t, "viewer")

	w, resp := env.do(t, http.MethodGet, "/movies/genre/Horror", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var g entity.Genre
	if err := json.Unmarshal(resp.Data, &g); err != nil {
		t.Fatalf("unmarshal genre: %v", err)
	}
	if g.Name != "Horror" {
		t.Errorf("unexpected genre: %s", g.Name)
	}

	w2, resp2 := env.do(t, http.MethodGet, "/movies/genre/Western", token, nil)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w2.Code)
	}
	if resp2.Message != "Genre not found." {
		t.Errorf("unexpected message: %q", resp2.Message)
	}
}

func TestMovies_SearchWithoutBackend(t *testing.T) {
	env := newTestEnv(t, testMovies()...)
	token := env.token(t, "viewer")

	// search index is optional; without it the endpoint returns an empty list
	w, resp := env.do(t, http.MethodGet, "/movies/search?q=alien", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var hits []map[string]any
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &hits); err != nil {
			t.Fatalf("unmarshal hits: %v", err)
		}
	}
	if len(hits) != 0 {
		t.Errorf("expected no hits without a search backend, got %d", len(hits))
	}

	w2, _ := env.do(t, http.MethodGet, "/movies/search", token, nil)
	if w2.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing query, got %d", w2.Code)
	}
}
