package repository

import "errors"

var (
	// ErrNotFound is returned when a key does not resolve to a document.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)
