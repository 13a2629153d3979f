package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/dto"
	"blog-api/services"
)

// ListUsersHandler godoc
// @Summary      List users
// @Description  Users ordered by first and last name, optionally filtered by a name keyword
// @Tags         users
// @Param        keyword  query  string  false  "Name keyword"
// @Param        page     query  int     false  "Page number (1-based)"
// @Param        limit    query  int     false  "Page size (default 20)"
// @Produce      json
// @Success      200  {object}  dto.UserListResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/users [get]
func ListUsersHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.List(c.Request.Context(), listInput(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.UserListResponseDTO{Success: true, UserListDTO: *page})
	}
}

// GetUserHandler godoc
// @Summary      Get a user
// @Tags         users
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.UserResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/users/{id} [get]
func GetUserHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.UserResponseDTO{Success: true, User: *user})
	}
}

// CreateUserHandler godoc
// @Summary      Register
// @Tags         users
// @Accept       json
// @Param        body  body  dto.CreateUserRequest  true  "User"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/users [post]
func CreateUserHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateUserRequest
		if !bindPayload(c, &req) {
			return
		}
		if err := svc.Create(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusCreated, services.MsgUserCreated)
	}
}

// UpdateUserHandler godoc
// @Summary      Update my profile
// @Description  Requires the current password; the password itself is not changed
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        id    path  string                 true  "ObjectID"
// @Param        body  body  dto.UpdateUserRequest  true  "Changes"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/users/{id} [put]
func UpdateUserHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requireCaller(c)
		if !ok {
			return
		}
		var req dto.UpdateUserRequest
		if !bindPayload(c, &req) {
			return
		}
		if err := svc.Update(c.Request.Context(), caller, c.Param("id"), req); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusOK, services.MsgUserUpdated)
	}
}
