package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-api/db"
	"blog-api/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(database *mongo.Database) *BlogRepository {
	return &BlogRepository{col: database.Collection(db.BlogsCollection)}
}

// Count returns the number of blogs matching filter.
func (r *BlogRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// Find returns the blogs matching filter, windowed and ordered by opts.
func (r *BlogRepository) Find(ctx context.Context, filter bson.M, opts FindOptions) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, filter, opts.mongo())
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	out := make([]models.Blog, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// FindOne returns the first blog matching filter or ErrNotFound.
func (r *BlogRepository) FindOne(ctx context.Context, filter bson.M, projection bson.M) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, filter, findOneOptions(projection)).Decode(&b); err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// Insert stores a new blog and sets its ID.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, b); err != nil {
		return translate(err)
	}
	return nil
}

// UpdateByID applies a $set of the given fields. A missing document is
// ErrNotFound; a title collision is ErrDuplicateKey.
func (r *BlogRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementReadCount bumps read_count by one.
func (r *BlogRepository) IncrementReadCount(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"read_count": 1}})
	return translate(err)
}

// DeleteOne removes the first blog matching filter and reports how many were removed.
func (r *BlogRepository) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return 0, translate(err)
	}
	return res.DeletedCount, nil
}
