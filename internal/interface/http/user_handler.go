package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/application"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/response"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/validation"
)

const serverErrorMessage = "An error occurred on the server."

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// userRequest is shared by signup and update; both paths validate the same
// field rules and re-hash the password.
type userRequest struct {
	Username string `json:"Username" binding:"required,min=5,alphanum"`
	Password string `json:"Password" binding:"required"`
	Email    string `json:"Email" binding:"required,email"`
	Birthday string `json:"Birthday" binding:"omitempty"`
}

type loginRequest struct {
	Username string `json:"Username" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

func parseBirthday(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

func (h *UserHandler) storeError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error(msg)
	}
	response.Error[any](c, http.StatusInternalServerError, serverErrorMessage, nil)
}

// Signup POST /users (public)
func (h *UserHandler) Signup(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", validation.ToDetails(err))
		return
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed",
			[]validation.FieldError{{Field: "Birthday", Message: "must be a valid date"}})
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.UserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: birthday,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			response.Error[any](c, http.StatusBadRequest, req.Username+" already exists", nil)
			return
		}
		h.storeError(c, err, "create user failed")
		return
	}
	response.Success(c, http.StatusCreated, u, "user created", nil)
}

// Login POST /login (public). All failures look the same to the caller.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u, "token": token}, "login successful",
		map[string]any{"expires_at": exp})
}

// List GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "list users failed")
		return
	}
	response.Success(c, http.StatusOK, users, "users", nil)
}

// Get GET /users/:Username
func (h *UserHandler) Get(c *gin.Context) {
	username := c.Param("Username")
	u, err := h.Svc.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusBadRequest, username+" was not found.", nil)
			return
		}
		h.storeError(c, err, "get user failed")
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

// Update PUT /users/:Username
func (h *UserHandler) Update(c *gin.Context) {
	username := c.Param("Username")
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", validation.ToDetails(err))
		return
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed",
			[]validation.FieldError{{Field: "Birthday", Message: "must be a valid date"}})
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), username, application.UserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: birthday,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error[any](c, http.StatusBadRequest, username+" was not found.", nil)
		case errors.Is(err, repository.ErrDuplicateUsername):
			response.Error[any](c, http.StatusBadRequest, req.Username+" already exists", nil)
		default:
			h.storeError(c, err, "update user failed")
		}
		return
	}
	response.Success(c, http.StatusOK, u, "user updated", nil)
}

// Delete DELETE /users/:Username
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("Username")
	if err := h.Svc.Delete(c.Request.Context(), username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusBadRequest, username+" was not found.", nil)
			return
		}
		h.storeError(c, err, "delete user failed")
		return
	}
	response.Success[any](c, http.StatusOK, nil, username+" was deleted.", nil)
}

// AddFavorite POST /users/:Username/movies/:MovieID (idempotent)
func (h *UserHandler) AddFavorite(c *gin.Context) {
	h.favorite(c, http.StatusCreated, h.Svc.AddFavorite)
}

// RemoveFavorite DELETE /users/:Username/movies/:MovieID (idempotent no-op on absent)
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	h.favorite(c, http.StatusOK, h.Svc.RemoveFavorite)
}

func (h *UserHandler) favorite(c *gin.Context, status int, op func(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error)) {
	username := c.Param("Username")
	movieID, err := primitive.ObjectIDFromHex(c.Param("MovieID"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid movie id", nil)
		return
	}
	u, err := op(c.Request.Context(), username, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusBadRequest, username+" was not found.", nil)
			return
		}
		h.storeError(c, err, "favorite update failed")
		return
	}
	response.Success(c, status, u, "favorites updated", nil)
}
