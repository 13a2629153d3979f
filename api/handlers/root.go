package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/config"
	"blog-api/dto"
)

const aboutText = "A blogging API: register, log in, write drafts, publish them and search what others have published."

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// AboutHandler godoc
// @Summary      About this API
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.AboutResponseDTO
// @Router       / [get]
func AboutHandler(contact config.AuthorContact) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.AboutResponseDTO{Success: true, About: aboutText, Contact: contact})
	}
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Failure      503  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponseDTO{Success: false, Status: "degraded"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Success: true, Status: "ok"})
	}
}

// NotFoundHandler answers routes that do not exist.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Success: false, Message: "Route does not exist."})
	}
}
