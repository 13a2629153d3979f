package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/dto"
	"blog-api/models"
	"blog-api/repositories"
)

var (
	userSort = bson.D{
		{Key: "first_name", Value: 1},
		{Key: "last_name", Value: 1},
	}
	userListProjection   = bson.M{"first_name": 1, "last_name": 1}
	userDetailProjection = bson.M{"first_name": 1, "last_name": 1, "email": 1}
)

type UserService struct {
	users  UserStore
	hasher PasswordHasher
}

func NewUserService(users UserStore, hasher PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// List pages through users ordered by name. A non-empty keyword narrows to
// users whose first or last name contains it.
func (s *UserService) List(ctx context.Context, in ListInput) (*dto.UserListDTO, error) {
	filter := bson.M{}
	if in.Keyword != "" {
		filter = NameFilter(in.Keyword)
	}

	total, err := s.users.Count(ctx, filter)
	if err != nil {
		return nil, badRequest(MsgInvalidUserID, err)
	}
	page := Paginate(in.Page, in.Limit, total)

	users, err := s.users.Find(ctx, filter, repositories.FindOptions{
		Skip:       int64(page.Offset),
		Limit:      int64(page.Limit),
		Sort:       userSort,
		Projection: userListProjection,
	})
	if err != nil {
		return nil, badRequest(MsgInvalidUserID, err)
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserDTO(u))
	}
	return &dto.UserListDTO{
		Users:       out,
		Limit:       page.Limit,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, nil
}

// Get returns a user's public profile including email.
func (s *UserService) Get(ctx context.Context, userID string) (*dto.UserDTO, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, badRequest(MsgInvalidUserID, err)
	}

	u, err := s.users.FindOne(ctx, bson.M{"_id": id}, userDetailProjection)
	if err != nil {
		return nil, badRequest(MsgInvalidUserID, err)
	}
	out := dto.NewUserDTO(*u)
	return &out, nil
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Create registers a user with a hashed password.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) error {
	if len(req.Password) > MaxPasswordBytes {
		return badRequest(MsgPasswordTooLong, nil)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	n, err := s.users.Count(ctx, bson.M{"email": email})
	if err != nil {
		return internal(err)
	}
	if n > 0 {
		return conflict(MsgEmailTaken, nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return internal(err)
	}

	u := &models.User{
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Password:  hash,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return conflict(MsgEmailTaken, err)
		}
		return internal(err)
	}
	return nil
}

// Update changes the caller's email and names after re-checking their password.
// The password itself is never changed here.
func (s *UserService) Update(ctx context.Context, caller primitive.ObjectID, userID string, req dto.UpdateUserRequest) error {
	if _, err := authorizeSelf(ctx, s.users, s.hasher, userID, caller, req.Password); err != nil {
		return err
	}

	set := bson.M{}
	if v := strings.ToLower(strings.TrimSpace(req.Email)); v != "" {
		set["email"] = v
	}
	if v := strings.TrimSpace(req.FirstName); v != "" {
		set["first_name"] = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		set["last_name"] = v
	}
	if len(set) == 0 {
		return nil
	}

	if err := s.users.UpdateByID(ctx, caller, set); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateKey):
			return conflict(MsgEmailTaken, err)
		case errors.Is(err, repositories.ErrNotFound):
			return badRequest(MsgInvalidUserID, nil)
		}
		return internal(err)
	}
	return nil
}
