package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/application"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/response"
)

type MovieHandler struct {
	Svc    *application.MovieService
	Logger *logrus.Logger
}

func NewMovieHandler(svc *application.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{Svc: svc, Logger: logger}
}

// List GET /movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "list movies failed")
		return
	}
	response.Success(c, http.StatusOK, movies, "movies", nil)
}

// GetByTitle GET /movies/:Title
func (h *MovieHandler) GetByTitle(c *gin.Context) {
	m, err := h.Svc.GetByTitle(c.Request.Context(), c.Param("Title"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusBadRequest, "Movie not found.", nil)
			return
		}
		h.storeError(c, err, "get movie failed")
		return
	}
	response.Success(c, http.StatusOK, m, "movie", nil)
}

// GetDirector GET /movies/director/:Name
func (h *MovieHandler) GetDirector(c *gin.Context) {
	d, err := h.Svc.GetDirector(c.Request.Context(), c.Param("Name"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusBadRequest, "Director not found.", nil)
			return
		}
		h.storeError(c, err, "get director failed")
		return
	}
	response.Success(c, http.StatusOK, d, "director", nil)
}

// GetGenre GET /movies/genre/:Name
func (h *MovieHandler) GetGenre(c *gin.Context) {
	g, err := h.Svc.GetGenre(c.Request.Context(), c.Param("Name"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusBadRequest, "Genre not found.", nil)
			return
		}
		h.storeError(c, err, "get genre failed")
		return
	}
	response.Success(c, http.StatusOK, g, "genre", nil)
}

// Search GET /movies/search?q=&limit=
func (h *MovieHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query parameter q", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.storeError(c, err, "movie search failed")
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

func (h *MovieHandler) storeError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error(msg)
	}
	response.Error[any](c, http.StatusInternalServerError, serverErrorMessage, nil)
}
