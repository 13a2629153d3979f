package dto

import "blog-api/config"

// ErrorResponseDTO is the failure envelope.
type ErrorResponseDTO struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Action forbidden"`
}

// MessageResponseDTO is the success envelope for acknowledgements.
type MessageResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Blog published successfully"`
}

type BlogResponseDTO struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Blog    BlogDTO `json:"blog"`
}

type BlogListResponseDTO struct {
	Success bool `json:"success"`
	BlogListDTO
}

type UserResponseDTO struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

type UserListResponseDTO struct {
	Success bool `json:"success"`
	UserListDTO
}

type LoginResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type AboutResponseDTO struct {
	Success bool                 `json:"success"`
	About   string               `json:"about"`
	Contact config.AuthorContact `json:"contact"`
}

type HealthResponseDTO struct {
	Success bool   `json:"success"`
	Status  string `json:"status" example:"ok"`
}
