package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-api/api/handlers"
	"blog-api/api/middleware"
	"blog-api/config"
	_ "blog-api/docs"
	"blog-api/ratelimit"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Blogs   handlers.BlogService
	Users   handlers.UserService
	Auth    handlers.AuthService
	Tokens  middleware.TokenParser
	DB      handlers.Pinger
	Contact config.AuthorContact

	// LoginLimiter guards the login route, PublicLimiter the anonymous reads.
	// Either may be nil.
	LoginLimiter  ratelimit.Limiter
	PublicLimiter ratelimit.Limiter
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestTrace(), middleware.RequestLoggingMiddleware(), middleware.Recovery())
	r.NoRoute(handlers.NotFoundHandler())

	r.GET("/", handlers.AboutHandler(d.Contact))
	r.GET("/health", handlers.HealthHandler(d.DB))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.RequireAuth(d.Tokens)
	publicLimit := middleware.RateLimit(d.PublicLimiter)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", middleware.RateLimit(d.LoginLimiter), handlers.LoginHandler(d.Auth))

		users := api.Group("/users")
		users.GET("", publicLimit, handlers.ListUsersHandler(d.Users))
		users.GET("/:id", publicLimit, handlers.GetUserHandler(d.Users))
		users.POST("", handlers.CreateUserHandler(d.Users))
		users.PUT("/:id", requireAuth, handlers.UpdateUserHandler(d.Users))

		blogs := api.Group("/blogs")
		blogs.GET("", publicLimit, handlers.ListPublishedBlogsHandler(d.Blogs))
		blogs.GET("/search/:param", publicLimit, handlers.SearchPublishedBlogsHandler(d.Blogs))
		blogs.GET("/myblogs", requireAuth, handlers.ListOwnBlogsHandler(d.Blogs))
		blogs.GET("/myblogs/search/:param", requireAuth, handlers.SearchOwnBlogsHandler(d.Blogs))
		blogs.GET("/myblogs/:id", requireAuth, handlers.GetOwnBlogHandler(d.Blogs))
		blogs.GET("/:id", publicLimit, handlers.GetPublishedBlogHandler(d.Blogs))
		blogs.POST("", requireAuth, handlers.CreateBlogHandler(d.Blogs))
		blogs.PUT("/publish/:id", requireAuth, handlers.PublishBlogHandler(d.Blogs))
		blogs.PUT("/:id", requireAuth, handlers.EditBlogHandler(d.Blogs))
		blogs.DELETE("/:id", requireAuth, handlers.DeleteBlogHandler(d.Blogs))
	}

	return r
}
