package router

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/models"
	"blog-api/repositories"
)

// memBlogs and memUsers keep documents in memory and understand the
// equality filters and sort orders the services issue. Operator filters
// ($in, $regex, $or) are not supported and match nothing.

type memBlogs struct {
	mu   sync.Mutex
	docs []models.Blog
}

type memUsers struct {
	mu   sync.Mutex
	docs []models.User
}

func blogField(b models.Blog, key string) any {
	switch key {
	case "_id":
		return b.ID
	case "title":
		return b.Title
	case "author":
		return b.Author
	case "state":
		return string(b.State)
	case "read_count":
		return b.ReadCount
	case "reading_time":
		return b.ReadingTime
	case "timestamp":
		return b.Timestamp
	}
	return nil
}

func userField(u models.User, key string) any {
	switch key {
	case "_id":
		return u.ID
	case "email":
		return u.Email
	case "first_name":
		return u.FirstName
	case "last_name":
		return u.LastName
	}
	return nil
}

func normalize(v any) any {
	if s, ok := v.(models.BlogState); ok {
		return string(s)
	}
	return v
}

func matches[T any](doc T, field func(T, string) any, filter bson.M) bool {
	for k, want := range filter {
		if _, isOp := want.(bson.M); isOp {
			return false
		}
		if field(doc, k) != normalize(want) {
			return false
		}
	}
	return true
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case int64:
		return cmp.Compare(x, b.(int64))
	case float64:
		return cmp.Compare(x, b.(float64))
	case string:
		return cmp.Compare(x, b.(string))
	case time.Time:
		return x.Compare(b.(time.Time))
	}
	return 0
}

func sortDocs[T any](docs []T, field func(T, string) any, order bson.D) {
	slices.SortStableFunc(docs, func(a, b T) int {
		for _, e := range order {
			c := compareValues(field(a, e.Key), field(b, e.Key))
			if dir, _ := e.Value.(int); dir < 0 {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

func window[T any](docs []T, opts repositories.FindOptions) []T {
	start := min(int(opts.Skip), len(docs))
	docs = docs[start:]
	if opts.Limit > 0 && int(opts.Limit) < len(docs) {
		docs = docs[:opts.Limit]
	}
	return docs
}

func (m *memBlogs) filter(f bson.M) []models.Blog {
	out := make([]models.Blog, 0)
	for _, b := range m.docs {
		if matches(b, blogField, f) {
			out = append(out, b)
		}
	}
	return out
}

func (m *memBlogs) Count(_ context.Context, f bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filter(f))), nil
}

func (m *memBlogs) Find(_ context.Context, f bson.M, opts repositories.FindOptions) ([]models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.filter(f)
	sortDocs(docs, blogField, opts.Sort)
	return window(docs, opts), nil
}

func (m *memBlogs) FindOne(_ context.Context, f bson.M, _ bson.M) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.filter(f)
	if len(docs) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &docs[0], nil
}

func (m *memBlogs) Insert(_ context.Context, b *models.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.filter(bson.M{"title": b.Title})) > 0 {
		return repositories.ErrDuplicateKey
	}
	b.ID = primitive.NewObjectID()
	m.docs = append(m.docs, *b)
	return nil
}

func (m *memBlogs) update(id primitive.ObjectID, apply func(*models.Blog)) error {
	for i := range m.docs {
		if m.docs[i].ID == id {
			apply(&m.docs[i])
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *memBlogs) UpdateByID(_ context.Context, id primitive.ObjectID, set bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.update(id, func(b *models.Blog) {
		for k, v := range set {
			switch k {
			case "title":
				b.Title = v.(string)
			case "description":
				b.Description = v.(string)
			case "body":
				b.Body = v.(string)
			case "reading_time":
				b.ReadingTime = v.(float64)
			case "tags":
				b.Tags = v.([]string)
			case "state":
				b.State = models.BlogState(normalize(v).(string))
			}
		}
	})
}

func (m *memBlogs) IncrementReadCount(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.update(id, func(b *models.Blog) { b.ReadCount++ })
}

func (m *memBlogs) DeleteOne(_ context.Context, f bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.docs {
		if matches(b, blogField, f) {
			m.docs = slices.Delete(m.docs, i, i+1)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memUsers) filter(f bson.M) []models.User {
	out := make([]models.User, 0)
	for _, u := range m.docs {
		if matches(u, userField, f) {
			out = append(out, u)
		}
	}
	return out
}

func (m *memUsers) Count(_ context.Context, f bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filter(f))), nil
}

func (m *memUsers) Find(_ context.Context, f bson.M, opts repositories.FindOptions) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.filter(f)
	sortDocs(docs, userField, opts.Sort)
	return window(docs, opts), nil
}

func (m *memUsers) FindOne(_ context.Context, f bson.M, _ bson.M) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.filter(f)
	if len(docs) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &docs[0], nil
}

func (m *memUsers) FindByIDs(_ context.Context, ids []primitive.ObjectID, _ bson.M) (map[primitive.ObjectID]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[primitive.ObjectID]models.User, len(ids))
	for _, u := range m.docs {
		if slices.Contains(ids, u.ID) {
			out[u.ID] = u
		}
	}
	return out, nil
}

func (m *memUsers) Insert(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.filter(bson.M{"email": u.Email})) > 0 {
		return repositories.ErrDuplicateKey
	}
	u.ID = primitive.NewObjectID()
	m.docs = append(m.docs, *u)
	return nil
}

func (m *memUsers) UpdateByID(_ context.Context, id primitive.ObjectID, set bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID != id {
			continue
		}
		for k, v := range set {
			switch k {
			case "email":
				m.docs[i].Email = v.(string)
			case "first_name":
				m.docs[i].FirstName = v.(string)
			case "last_name":
				m.docs[i].LastName = v.(string)
			}
		}
		return nil
	}
	return repositories.ErrNotFound
}
