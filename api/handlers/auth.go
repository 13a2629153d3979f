package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/dto"
	"blog-api/services"
)

// LoginHandler godoc
// @Summary      Log in
// @Description  Exchanges credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Produce      json
// @Success      200  {object}  dto.LoginResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      429  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/auth/login [post]
func LoginHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if !bindPayload(c, &req) {
			return
		}
		token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.LoginResponseDTO{Success: true, Message: services.MsgLoggedIn, Token: token})
	}
}
