package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/dto"
	"blog-api/services"
)

// BlogService is implemented by *services.BlogService.
type BlogService interface {
	Create(ctx context.Context, caller primitive.ObjectID, req dto.CreateBlogRequest) (*dto.BlogDTO, error)
	Edit(ctx context.Context, caller primitive.ObjectID, blogID string, req dto.EditBlogRequest) error
	Publish(ctx context.Context, caller primitive.ObjectID, blogID string) error
	Delete(ctx context.Context, caller primitive.ObjectID, blogID string) error
	GetPublished(ctx context.Context, blogID string) (*dto.BlogDTO, error)
	GetOwn(ctx context.Context, caller primitive.ObjectID, blogID string) (*dto.BlogDTO, error)
	ListPublished(ctx context.Context, in services.ListInput) (*dto.BlogListDTO, error)
	ListOwn(ctx context.Context, caller primitive.ObjectID, in services.ListInput) (*dto.BlogListDTO, error)
	SearchPublished(ctx context.Context, target services.SearchTarget, in services.ListInput) (*dto.BlogListDTO, error)
	SearchOwn(ctx context.Context, caller primitive.ObjectID, target services.SearchTarget, in services.ListInput) (*dto.BlogListDTO, error)
}

// UserService is implemented by *services.UserService.
type UserService interface {
	List(ctx context.Context, in services.ListInput) (*dto.UserListDTO, error)
	Get(ctx context.Context, userID string) (*dto.UserDTO, error)
	Create(ctx context.Context, req dto.CreateUserRequest) error
	Update(ctx context.Context, caller primitive.ObjectID, userID string, req dto.UpdateUserRequest) error
}

// AuthService is implemented by *services.AuthService.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}
