package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/entity"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/domain/repository"
)

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) coll() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.FavoriteMovies == nil {
		u.FavoriteMovies = []primitive.ObjectID{}
	}
	if _, err := r.coll().InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	u := &entity.User{}
	if err := r.coll().FindOne(ctx, bson.M{"Username": username}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	cur, err := r.coll().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	users := make([]entity.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update $sets the mutable fields on the document keyed by username and
// returns the updated document.
func (r *UserRepository) Update(ctx context.Context, username string, u *entity.User) (*entity.User, error) {
	set := bson.M{
		"Username": u.Username,
		"Password": u.Password,
		"Email":    u.Email,
	}
	if u.Birthday != nil {
		set["Birthday"] = u.Birthday
	}
	return r.findOneAndUpdate(ctx, username, bson.M{"$set": set})
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	res, err := r.coll().DeleteOne(ctx, bson.M{"Username": username})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddFavorite relies on $addToSet so concurrent calls converge without a
// read-modify-write cycle in application code.
func (r *UserRepository) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{"$addToSet": bson.M{"FavoriteMovies": movieID}})
}

// RemoveFavorite is a no-op when the id is not a member.
func (r *UserRepository) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{"$pull": bson.M{"FavoriteMovies": movieID}})
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, username string, update bson.M) (*entity.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	u := &entity.User{}
	err := r.coll().FindOneAndUpdate(ctx, bson.M{"Username": username}, update, opts).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateUsername
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
