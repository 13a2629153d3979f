package dto

import "blog-api/models"

type UserDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// UserListDTO is one page of users.
type UserListDTO struct {
	Users       []UserDTO `json:"users"`
	Limit       int       `json:"limit"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
}

// CreateUserRequest registers a user. Passwords are capped at 72 bytes, the
// most bcrypt will hash.
type CreateUserRequest struct {
	Email          string `json:"email" validate:"required,email,tld"`
	FirstName      string `json:"first_name" validate:"required,min=3,max=30,alpha"`
	LastName       string `json:"last_name" validate:"required,min=3,max=30,alpha"`
	Password       string `json:"password" validate:"required,max_bytes=72"`
	RepeatPassword string `json:"repeat_password" validate:"required,eqfield=Password"`
}

// UpdateUserRequest carries the current password for re-authentication; it
// never changes the stored password.
type UpdateUserRequest struct {
	Email     string `json:"email" validate:"omitempty,email,tld"`
	FirstName string `json:"first_name" validate:"omitempty,min=3,max=30,alpha"`
	LastName  string `json:"last_name" validate:"omitempty,min=3,max=30,alpha"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,tld"`
	Password string `json:"password" validate:"required"`
}
