package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/api/middleware"
	"blog-api/config"
	"blog-api/dto"
	"blog-api/services"
)

type fakeBlogService struct {
	BlogService

	created   dto.CreateBlogRequest
	createErr error
	caller    primitive.ObjectID
	target    services.SearchTarget
	in        services.ListInput
	getErr    error
	publishFn func(caller primitive.ObjectID, id string) error
}

func (f *fakeBlogService) Create(_ context.Context, caller primitive.ObjectID, req dto.CreateBlogRequest) (*dto.BlogDTO, error) {
	f.caller, f.created = caller, req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.BlogDTO{ID: "b1", Title: req.Title, State: "draft", Tags: []string{}}, nil
}

func (f *fakeBlogService) GetPublished(_ context.Context, id string) (*dto.BlogDTO, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dto.BlogDTO{ID: id, Title: "Hello", Author: &dto.AuthorDTO{ID: "u1", FirstName: "Ada"}}, nil
}

func (f *fakeBlogService) Publish(_ context.Context, caller primitive.ObjectID, id string) error {
	return f.publishFn(caller, id)
}

func (f *fakeBlogService) SearchPublished(_ context.Context, target services.SearchTarget, in services.ListInput) (*dto.BlogListDTO, error) {
	f.target, f.in = target, in
	return &dto.BlogListDTO{Blogs: []dto.BlogDTO{}, Limit: 20, CurrentPage: 1}, nil
}

func (f *fakeBlogService) ListOwn(_ context.Context, caller primitive.ObjectID, in services.ListInput) (*dto.BlogListDTO, error) {
	f.caller, f.in = caller, in
	return &dto.BlogListDTO{Blogs: []dto.BlogDTO{{ID: "b1"}}, Limit: in.Limit, CurrentPage: 1, TotalPages: 1}, nil
}

type fakeUserService struct {
	UserService
	createErr error
}

func (f *fakeUserService) Create(context.Context, dto.CreateUserRequest) error { return f.createErr }

type fakeAuthService struct {
	token string
	err   error
}

func (f fakeAuthService) Login(context.Context, string, string) (string, error) { return f.token, f.err }

type stubTokens struct{ sub string }

func (s stubTokens) Parse(token string) (string, error) {
	if token != "good" {
		return "", errors.New("bad token")
	}
	return s.sub, nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func serve(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func validBlogBody() string {
	return `{"title":"Go tips","tags":["go","tips"],"body":"` + strings.Repeat("word ", 30) + `"}`
}

func TestCreateBlogHandler(t *testing.T) {
	caller := primitive.NewObjectID()

	setup := func(svc *fakeBlogService) *gin.Engine {
		r := newEngine()
		r.POST("/blogs", middleware.RequireAuth(stubTokens{sub: caller.Hex()}), CreateBlogHandler(svc))
		return r
	}

	t.Run("created", func(t *testing.T) {
		svc := &fakeBlogService{}
		rec := serve(setup(svc), http.MethodPost, "/blogs", validBlogBody(), "good")

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, services.MsgBlogCreated, body["message"])
		assert.Equal(t, "Go tips", body["blog"].(map[string]any)["title"])
		assert.Equal(t, caller, svc.caller)
		assert.Equal(t, []string{"go", "tips"}, svc.created.Tags)
	})

	t.Run("validation message", func(t *testing.T) {
		rec := serve(setup(&fakeBlogService{}), http.MethodPost, "/blogs", `{"title":"Go tips","body":"short"}`, "good")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"success": false, "message": "Body is too short."}, decode(t, rec))
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := serve(setup(&fakeBlogService{}), http.MethodPost, "/blogs", `{"title":`, "good")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgInvalidInput, decode(t, rec)["message"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := serve(setup(&fakeBlogService{}), http.MethodPost, "/blogs", validBlogBody(), "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, middleware.MsgUnauthorized, decode(t, rec)["message"])
	})

	t.Run("service conflict", func(t *testing.T) {
		svc := &fakeBlogService{createErr: &services.Error{Kind: services.KindConflict, Message: services.MsgTitleTaken}}
		rec := serve(setup(svc), http.MethodPost, "/blogs", validBlogBody(), "good")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, services.MsgTitleTaken, decode(t, rec)["message"])
	})
}

func TestHandlersWithoutCallerAreUnauthorized(t *testing.T) {
	r := newEngine()
	r.GET("/mine", ListOwnBlogsHandler(&fakeBlogService{}))

	rec := serve(r, http.MethodGet, "/mine", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestListOwnBlogsHandlerPassesQuery(t *testing.T) {
	caller := primitive.NewObjectID()
	svc := &fakeBlogService{}
	r := newEngine()
	r.GET("/mine", middleware.RequireAuth(stubTokens{sub: caller.Hex()}), ListOwnBlogsHandler(svc))

	rec := serve(r, http.MethodGet, "/mine?state=draft&page=2&limit=5", "", "good")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.ListInput{Page: 2, Limit: 5, State: "draft"}, svc.in)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["blogs"], 1)
	assert.EqualValues(t, 5, body["limit"])
}

func TestSearchPublishedBlogsHandler(t *testing.T) {
	svc := &fakeBlogService{}
	r := newEngine()
	r.GET("/search/:param", SearchPublishedBlogsHandler(svc))

	rec := serve(r, http.MethodGet, "/search/tags?keyword=go&page=abc", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.TargetTags, svc.target)
	assert.Equal(t, "go", svc.in.Keyword)
	assert.Equal(t, 0, svc.in.Page)
	assert.Equal(t, []any{}, decode(t, rec)["blogs"])
}

func TestGetPublishedBlogHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r := newEngine()
		r.GET("/blogs/:id", GetPublishedBlogHandler(&fakeBlogService{}))

		rec := serve(r, http.MethodGet, "/blogs/abc", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		blog := body["blog"].(map[string]any)
		assert.Equal(t, "abc", blog["id"])
		assert.Equal(t, "Ada", blog["author"].(map[string]any)["first_name"])
		assert.NotContains(t, body, "message")
	})

	t.Run("unexpected errors are hidden", func(t *testing.T) {
		r := newEngine()
		r.GET("/blogs/:id", GetPublishedBlogHandler(&fakeBlogService{getErr: errors.New("connection reset")}))

		rec := serve(r, http.MethodGet, "/blogs/abc", "", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, services.MsgInternal, decode(t, rec)["message"])
	})
}

func TestPublishBlogHandler(t *testing.T) {
	caller := primitive.NewObjectID()
	svc := &fakeBlogService{publishFn: func(c primitive.ObjectID, id string) error {
		assert.Equal(t, caller, c)
		if id != "mine" {
			return &services.Error{Kind: services.KindForbidden, Message: services.MsgActionForbidden}
		}
		return nil
	}}
	r := newEngine()
	r.PUT("/publish/:id", middleware.RequireAuth(stubTokens{sub: caller.Hex()}), PublishBlogHandler(svc))

	rec := serve(r, http.MethodPut, "/publish/mine", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true, "message": services.MsgBlogPublished}, decode(t, rec))

	rec = serve(r, http.MethodPut, "/publish/theirs", "", "good")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, services.MsgActionForbidden, decode(t, rec)["message"])
}

func TestCreateUserHandler(t *testing.T) {
	const payload = `{"email":"ada@example.com","first_name":"Ada","last_name":"Lovelace","password":"pw","repeat_password":"pw"}`

	r := newEngine()
	r.POST("/users", CreateUserHandler(&fakeUserService{}))
	rec := serve(r, http.MethodPost, "/users", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, services.MsgUserCreated, decode(t, rec)["message"])

	rec = serve(r, http.MethodPost, "/users", strings.Replace(payload, `"repeat_password":"pw"`, `"repeat_password":"px"`, 1), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password not match", decode(t, rec)["message"])

	r = newEngine()
	r.POST("/users", CreateUserHandler(&fakeUserService{createErr: &services.Error{Kind: services.KindConflict, Message: services.MsgEmailTaken}}))
	rec = serve(r, http.MethodPost, "/users", payload, "")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	r := newEngine()
	r.POST("/login", LoginHandler(fakeAuthService{token: "jwt"}))

	rec := serve(r, http.MethodPost, "/login", `{"email":"ada@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true, "message": services.MsgLoggedIn, "token": "jwt"}, decode(t, rec))

	r = newEngine()
	r.POST("/login", LoginHandler(fakeAuthService{err: &services.Error{Kind: services.KindBadRequest, Message: services.MsgInvalidCredentials}}))
	rec = serve(r, http.MethodPost, "/login", `{"email":"ada@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, services.MsgInvalidCredentials, decode(t, rec)["message"])
}

func TestRootHandlers(t *testing.T) {
	r := newEngine()
	r.NoRoute(NotFoundHandler())
	r.GET("/", AboutHandler(config.AuthorContact{Email: "me@example.com"}))

	rec := serve(r, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "me@example.com", decode(t, rec)["contact"].(map[string]any)["email"])

	rec = serve(r, http.MethodGet, "/nowhere", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Route does not exist."}, decode(t, rec))
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		ping   error
		code   int
		status string
	}{
		{name: "ok", code: http.StatusOK, status: "ok"},
		{name: "degraded", ping: errors.New("no primary"), code: http.StatusServiceUnavailable, status: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine()
			r.GET("/health", HealthHandler(PingerFunc(func(context.Context) error { return tt.ping })))

			rec := serve(r, http.MethodGet, "/health", "", "")
			require.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.status, decode(t, rec)["status"])
		})
	}
}
