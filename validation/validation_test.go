package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/dto"
)

func validBlog() dto.CreateBlogRequest {
	return dto.CreateBlogRequest{
		Title: "Writing idiomatic Go",
		Tags:  []string{"go", "style"},
		Body:  strings.Repeat("word ", 25),
	}
}

func firstMessage(t *testing.T, err error) string {
	t.Helper()
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	require.NotEmpty(t, fe)
	return fe.Error()
}

func TestValidateBlog(t *testing.T) {
	require.NoError(t, Validate(validBlog()))

	tests := []struct {
		name   string
		mutate func(*dto.CreateBlogRequest)
		want   string
	}{
		{"missing title", func(b *dto.CreateBlogRequest) { b.Title = "" }, "Title is required."},
		{"title too short after trim", func(b *dto.CreateBlogRequest) { b.Title = "  ab  " }, "Title is too short"},
		{"title too long", func(b *dto.CreateBlogRequest) { b.Title = strings.Repeat("t", 101) }, "Title is too Long"},
		{"description too long", func(b *dto.CreateBlogRequest) { b.Description = strings.Repeat("d", 401) }, "Description is too Long"},
		{"unknown state", func(b *dto.CreateBlogRequest) { b.State = "archived" }, "Invalid State"},
		{"duplicate tags", func(b *dto.CreateBlogRequest) { b.Tags = []string{"go", "go"} }, "Duplicate tags not allowed."},
		{"tag with space", func(b *dto.CreateBlogRequest) { b.Tags = []string{"two words"} }, "Tag must not have space."},
		{"body too short", func(b *dto.CreateBlogRequest) { b.Body = "short" }, "Body is too short."},
		{"missing body", func(b *dto.CreateBlogRequest) { b.Body = "" }, "Body is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBlog()
			tt.mutate(&b)
			assert.Equal(t, tt.want, firstMessage(t, Validate(b)))
		})
	}
}

func TestValidateEditBlogOptionalDescription(t *testing.T) {
	long := strings.Repeat("d", 401)
	req := dto.EditBlogRequest{Title: "Title", Body: strings.Repeat("x", 100)}
	require.NoError(t, Validate(req))

	req.Description = &long
	assert.Equal(t, "Description is too Long", firstMessage(t, Validate(req)))
}

func TestValidateCreateUser(t *testing.T) {
	req := dto.CreateUserRequest{
		Email:          "ada@example.com",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Password:       "secret",
		RepeatPassword: "secret",
	}
	require.NoError(t, Validate(req))

	bad := req
	bad.RepeatPassword = "other"
	assert.Equal(t, "Password not match", firstMessage(t, Validate(bad)))

	bad = req
	bad.FirstName = "A1"
	assert.Equal(t, "Firstname must only contain letters, space or special character not allowed.", firstMessage(t, Validate(bad)))

	bad = req
	bad.Email = "not-an-email"
	assert.Equal(t, "Invalid email.", firstMessage(t, Validate(bad)))

	bad = req
	bad.Password = strings.Repeat("p", 80)
	bad.RepeatPassword = bad.Password
	assert.Equal(t, "Password is too long.", firstMessage(t, Validate(bad)))

	// the cap counts bytes: 36 two-byte runes fit, 37 do not
	ok := req
	ok.Password = strings.Repeat("é", 36)
	ok.RepeatPassword = ok.Password
	require.NoError(t, Validate(ok))

	ok.Password = strings.Repeat("é", 37)
	ok.RepeatPassword = ok.Password
	assert.Equal(t, "Password is too long.", firstMessage(t, Validate(ok)))
}

func TestValidateEmailDomains(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ada@example.com", true},
		{"ada@mail.example.net", true},
		{"ada@example.ng", true},
		{"ada@EXAMPLE.COM", true},
		{"ada@example.org", false},
		{"ada@example.io", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := Validate(dto.LoginRequest{Email: tt.email, Password: "x"})
			if tt.valid {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, "Invalid email.", firstMessage(t, err))
		})
	}
}

func TestValidateUpdateUserRequiresPasswordOnly(t *testing.T) {
	require.NoError(t, Validate(dto.UpdateUserRequest{Password: "secret"}))
	assert.Equal(t, "Password is required.", firstMessage(t, Validate(dto.UpdateUserRequest{LastName: "Hopper"})))
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, Validate(dto.LoginRequest{Email: "a@b.com", Password: "x"}))
	assert.Equal(t, "Password is required.", firstMessage(t, Validate(dto.LoginRequest{Email: "a@b.com"})))
}
