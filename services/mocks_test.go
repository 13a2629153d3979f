package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/models"
	"blog-api/repositories"
)

// mockBlogStore is a BlogStore whose behaviour is set per test through the Func fields.
type mockBlogStore struct {
	CountFunc              func(filter bson.M) (int64, error)
	FindFunc               func(filter bson.M, opts repositories.FindOptions) ([]models.Blog, error)
	FindOneFunc            func(filter bson.M, projection bson.M) (*models.Blog, error)
	InsertFunc             func(b *models.Blog) error
	UpdateByIDFunc         func(id primitive.ObjectID, set bson.M) error
	IncrementReadCountFunc func(id primitive.ObjectID) error
	DeleteOneFunc          func(filter bson.M) (int64, error)
}

func (m *mockBlogStore) Count(_ context.Context, filter bson.M) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(filter)
	}
	return 0, nil
}

func (m *mockBlogStore) Find(_ context.Context, filter bson.M, opts repositories.FindOptions) ([]models.Blog, error) {
	if m.FindFunc != nil {
		return m.FindFunc(filter, opts)
	}
	return []models.Blog{}, nil
}

func (m *mockBlogStore) FindOne(_ context.Context, filter bson.M, projection bson.M) (*models.Blog, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(filter, projection)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockBlogStore) Insert(_ context.Context, b *models.Blog) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(b)
	}
	return nil
}

func (m *mockBlogStore) UpdateByID(_ context.Context, id primitive.ObjectID, set bson.M) error {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(id, set)
	}
	return nil
}

func (m *mockBlogStore) IncrementReadCount(_ context.Context, id primitive.ObjectID) error {
	if m.IncrementReadCountFunc != nil {
		return m.IncrementReadCountFunc(id)
	}
	return nil
}

func (m *mockBlogStore) DeleteOne(_ context.Context, filter bson.M) (int64, error) {
	if m.DeleteOneFunc != nil {
		return m.DeleteOneFunc(filter)
	}
	return 1, nil
}

type mockUserStore struct {
	CountFunc      func(filter bson.M) (int64, error)
	FindFunc       func(filter bson.M, opts repositories.FindOptions) ([]models.User, error)
	FindOneFunc    func(filter bson.M, projection bson.M) (*models.User, error)
	FindByIDsFunc  func(ids []primitive.ObjectID, projection bson.M) (map[primitive.ObjectID]models.User, error)
	InsertFunc     func(u *models.User) error
	UpdateByIDFunc func(id primitive.ObjectID, set bson.M) error
}

func (m *mockUserStore) Count(_ context.Context, filter bson.M) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(filter)
	}
	return 0, nil
}

func (m *mockUserStore) Find(_ context.Context, filter bson.M, opts repositories.FindOptions) ([]models.User, error) {
	if m.FindFunc != nil {
		return m.FindFunc(filter, opts)
	}
	return []models.User{}, nil
}

func (m *mockUserStore) FindOne(_ context.Context, filter bson.M, projection bson.M) (*models.User, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(filter, projection)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserStore) FindByIDs(_ context.Context, ids []primitive.ObjectID, projection bson.M) (map[primitive.ObjectID]models.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ids, projection)
	}
	return map[primitive.ObjectID]models.User{}, nil
}

func (m *mockUserStore) Insert(_ context.Context, u *models.User) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(u)
	}
	return nil
}

func (m *mockUserStore) UpdateByID(_ context.Context, id primitive.ObjectID, set bson.M) error {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(id, set)
	}
	return nil
}

// plainHasher "hashes" by prefixing, which keeps assertions readable.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Verify(plain, hash string) bool   { return hash == "hashed:"+plain }

type mockSigner struct {
	SignFunc func(userID string) (string, error)
}

func (m *mockSigner) Sign(userID string) (string, error) {
	if m.SignFunc != nil {
		return m.SignFunc(userID)
	}
	return "token-" + userID, nil
}
