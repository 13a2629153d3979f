package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"blog-api/repositories"
)

type AuthService struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenSigner
}

func NewAuthService(users UserStore, hasher PasswordHasher, tokens TokenSigner) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login checks credentials and issues a signed token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.users.FindOne(ctx, bson.M{"email": email}, bson.M{"password": 1})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return "", badRequest(MsgUserNotRegistered, nil)
	case err != nil:
		return "", internal(err)
	}

	if !s.hasher.Verify(password, u.Password) {
		return "", badRequest(MsgInvalidCredentials, nil)
	}

	token, err := s.tokens.Sign(u.ID.Hex())
	if err != nil {
		return "", internal(err)
	}
	return token, nil
}
