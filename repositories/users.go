package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-api/db"
	"blog-api/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{col: database.Collection(db.UsersCollection)}
}

func (r *UserRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (r *UserRepository) Find(ctx context.Context, filter bson.M, opts FindOptions) ([]models.User, error) {
	cur, err := r.col.Find(ctx, filter, opts.mongo())
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	out := make([]models.User, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// FindOne returns the first user matching filter or ErrNotFound.
func (r *UserRepository) FindOne(ctx context.Context, filter bson.M, projection bson.M) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, filter, findOneOptions(projection)).Decode(&u); err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// FindByIDs loads the users with the given ids, keyed by id. Unknown ids are skipped.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID, projection bson.M) (map[primitive.ObjectID]models.User, error) {
	out := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	users, err := r.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, FindOptions{Projection: projection})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// Insert stores a new user and sets its ID. A taken email is ErrDuplicateKey.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return translate(err)
	}
	return nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
