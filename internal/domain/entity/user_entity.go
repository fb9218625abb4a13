package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate root for the user domain.
// Password always holds a bcrypt hash; plaintext is never persisted.
// FavoriteMovies is a set of movie ids (duplicates suppressed by the store).
type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Username       string               `bson:"Username" json:"Username"`
	Password       string               `bson:"Password" json:"Password"`
	Email          string               `bson:"Email" json:"Email"`
	Birthday       *time.Time           `bson:"Birthday,omitempty" json:"Birthday,omitempty"`
	FavoriteMovies []primitive.ObjectID `bson:"FavoriteMovies" json:"FavoriteMovies"`
}
