package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/models"
	"blog-api/repositories"
)

// BlogStore is the storage the blog operations need. *repositories.BlogRepository satisfies it.
type BlogStore interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, opts repositories.FindOptions) ([]models.Blog, error)
	FindOne(ctx context.Context, filter bson.M, projection bson.M) (*models.Blog, error)
	Insert(ctx context.Context, b *models.Blog) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error
	IncrementReadCount(ctx context.Context, id primitive.ObjectID) error
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
}

// UserStore is the storage the user operations need. *repositories.UserRepository satisfies it.
type UserStore interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, opts repositories.FindOptions) ([]models.User, error)
	FindOne(ctx context.Context, filter bson.M, projection bson.M) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID, projection bson.M) (map[primitive.ObjectID]models.User, error)
	Insert(ctx context.Context, u *models.User) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type TokenSigner interface {
	Sign(userID string) (string, error)
}
