package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/models"
)

// AuthorDTO is the populated view of a blog's author. Which name and email
// fields are present depends on the query that loaded it.
type AuthorDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// BlogDTO exposes a blog to API consumers. Fields projected out by a listing
// are omitted from the JSON.
type BlogDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Author      *AuthorDTO `json:"author,omitempty"`
	State       string     `json:"state,omitempty"`
	ReadCount   int64      `json:"read_count"`
	ReadingTime float64    `json:"reading_time"`
	Tags        []string   `json:"tags"`
	Body        string     `json:"body,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}

// NewBlogDTO maps a stored blog. author, when non-nil, replaces the bare
// author reference.
func NewBlogDTO(b models.Blog, author *AuthorDTO) BlogDTO {
	d := BlogDTO{
		ID:          b.ID.Hex(),
		Title:       b.Title,
		Description: b.Description,
		State:       string(b.State),
		ReadCount:   b.ReadCount,
		ReadingTime: b.ReadingTime,
		Tags:        b.Tags,
		Body:        b.Body,
		Timestamp:   b.Timestamp,
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	switch {
	case author != nil:
		d.Author = author
	case b.Author != primitive.NilObjectID:
		d.Author = &AuthorDTO{ID: b.Author.Hex()}
	}
	return d
}

func NewAuthorDTO(u models.User) *AuthorDTO {
	return &AuthorDTO{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// BlogListDTO is one page of blogs.
type BlogListDTO struct {
	Blogs       []BlogDTO `json:"blogs"`
	Limit       int       `json:"limit"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
}

// CreateBlogRequest is the payload for creating a blog. State is accepted but
// new blogs always start as drafts.
type CreateBlogRequest struct {
	Title       string   `json:"title" validate:"required,trimmed_min=3,trimmed_max=100"`
	Description string   `json:"description" validate:"max=400"`
	State       string   `json:"state" validate:"omitempty,oneof=draft published"`
	Tags        []string `json:"tags" validate:"omitempty,unique,dive,nospace"`
	Body        string   `json:"body" validate:"required,trimmed_min=100"`
}

// EditBlogRequest is the payload for editing a blog. Omitted optional fields
// are left untouched.
type EditBlogRequest struct {
	Title       string   `json:"title" validate:"required,trimmed_min=3,trimmed_max=100"`
	Description *string  `json:"description" validate:"omitempty,max=400"`
	State       string   `json:"state" validate:"omitempty,oneof=draft published"`
	Tags        []string `json:"tags" validate:"omitempty,unique,dive,nospace"`
	Body        string   `json:"body" validate:"required,trimmed_min=100"`
}
