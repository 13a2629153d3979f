package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// FindOptions narrows a multi-document query. Zero values mean "no limit",
// "no skip", "natural order" and "all fields".
type FindOptions struct {
	Skip       int64
	Limit      int64
	Sort       bson.D
	Projection bson.M
}

func (o FindOptions) mongo() *options.FindOptions {
	opts := options.Find()
	if o.Skip > 0 {
		opts.SetSkip(o.Skip)
	}
	if o.Limit > 0 {
		opts.SetLimit(o.Limit)
	}
	if len(o.Sort) > 0 {
		opts.SetSort(o.Sort)
	}
	if len(o.Projection) > 0 {
		opts.SetProjection(o.Projection)
	}
	return opts
}

func findOneOptions(projection bson.M) *options.FindOneOptions {
	opts := options.FindOne()
	if len(projection) > 0 {
		opts.SetProjection(projection)
	}
	return opts
}

// translate maps driver errors onto the package sentinels so callers never
// need to import the driver to classify a failure.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Join(ErrDuplicateKey, err)
	default:
		return err
	}
}
