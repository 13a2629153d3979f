package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/models"
	"blog-api/repositories"
)

// authorizeBlog loads the author and state of blogID and checks the caller wrote it.
func authorizeBlog(ctx context.Context, store BlogStore, blogID string, caller primitive.ObjectID) (*models.Blog, error) {
	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, badRequest(MsgBlogMissing, err)
	}

	b, err := store.FindOne(ctx, bson.M{"_id": id}, bson.M{"author": 1, "state": 1})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, badRequest(MsgBlogMissing, nil)
	case err != nil:
		return nil, badRequest(MsgBlogMissing, err)
	}

	if b.Author.Hex() != caller.Hex() {
		return nil, forbidden()
	}
	return b, nil
}

// authorizeSelf checks the caller is editing their own account and re-confirms
// the current password.
func authorizeSelf(ctx context.Context, store UserStore, hasher PasswordHasher, userID string, caller primitive.ObjectID, password string) (*models.User, error) {
	if userID != caller.Hex() {
		return nil, forbidden()
	}

	u, err := store.FindOne(ctx, bson.M{"_id": caller}, bson.M{"password": 1})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, badRequest(MsgInvalidUserID, nil)
	case err != nil:
		return nil, internal(err)
	}

	if !hasher.Verify(password, u.Password) {
		return nil, unauthorized(MsgIncorrectPassword)
	}
	return u, nil
}
