package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/dto"
	"blog-api/services"
)

// ListPublishedBlogsHandler godoc
// @Summary      List published blogs
// @Description  Published blogs ordered by read_count desc, reading_time asc, timestamp desc
// @Tags         blogs
// @Param        page   query  int  false  "Page number (1-based)"
// @Param        limit  query  int  false  "Page size (default 20)"
// @Produce      json
// @Success      200  {object}  dto.BlogListResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs [get]
func ListPublishedBlogsHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.ListPublished(c.Request.Context(), listInput(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogListResponse(page))
	}
}

// GetPublishedBlogHandler godoc
// @Summary      Get a published blog
// @Description  Returns the blog with its author and counts the read
// @Tags         blogs
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.BlogResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs/{id} [get]
func GetPublishedBlogHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetPublished(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogResponse(*blog, ""))
	}
}

// SearchPublishedBlogsHandler godoc
// @Summary      Search published blogs
// @Description  Case-insensitive substring search by author name, title or tags
// @Tags         blogs
// @Param        param    path   string  true   "author | title | tags"
// @Param        keyword  query  string  false  "Keyword"
// @Param        page     query  int     false  "Page number (1-based)"
// @Param        limit    query  int     false  "Page size (default 20)"
// @Produce      json
// @Success      200  {object}  dto.BlogListResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs/search/{param} [get]
func SearchPublishedBlogsHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := services.SearchTarget(c.Param("param"))
		page, err := svc.SearchPublished(c.Request.Context(), target, listInput(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogListResponse(page))
	}
}

// ListOwnBlogsHandler godoc
// @Summary      List my blogs
// @Description  The caller's blogs, newest first, optionally narrowed by state
// @Tags         myblogs
// @Security     BearerAuth
// @Param        state  query  string  false  "draft | published"
// @Param        page   query  int     false  "Page number (1-based)"
// @Param        limit  query  int     false  "Page size (default 20)"
// @Produce      json
// @Success      200  {object}  dto.BlogListResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs/myblogs [get]
func ListOwnBlogsHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requireCaller(c)
		if !ok {
			return
		}
		page, err := svc.ListOwn(c.Request.Context(), caller, listInput(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogListResponse(page))
	}
}

// SearchOwnBlogsHandler godoc
// @Summary      Search my blogs
// @Tags         myblogs
// @Security     BearerAuth
// @Param        param    path   string  true   "title | tags"
// @Param        keyword  query  string  false  "Keyword"
// @Produce      json
// @Success      200  {object}  dto.BlogListResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs/myblogs/search/{param} [get]
func SearchOwnBlogsHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requireCaller(c)
		if !ok {
			return
		}
		target := services.SearchTarget(c.Param("param"))
		page, err := svc.SearchOwn(c.Request.Context(), caller, target, listInput(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogListResponse(page))
	}
}

// GetOwnBlogHandler godoc
// @Summary      Get one of my blogs
// @Tags         myblogs
// @Security     BearerAuth
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.BlogResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs/myblogs/{id} [get]
func GetOwnBlogHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requireCaller(c)
		if !ok {
			return
		}
		blog, err := svc.GetOwn(c.Request.Context(), caller, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogResponse(*blog, ""))
	}
}

// CreateBlogHandler godoc
// @Summary      Create a blog
// @Description  New blogs always start as drafts
// @Tags         myblogs
// @Security     BearerAuth
// @Accept       json
// @Param        body  body  dto.CreateBlogRequest  true  "Blog"
// @Produce      json
// @Success      201  {object}  dto.BlogResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs [post]
func CreateBlogHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requireCaller(c)
		if !ok {
			return
		}
		var req dto.CreateBlogRequest
		if !bindPayload(c, &req) {
			return
		}
		blog, err := svc.Create(c.Request.Context(), caller, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, blogResponse(*blog, services.MsgBlogCreated))
	}
}

// EditBlogHandler godoc
// @Summary      Edit a blog
// @Tags         myblogs
// @Security     BearerAuth
// @Accept       json
// @Param        id    path  string               true  "ObjectID"
// @Param        body  body  dto.EditBlogRequest  true  "Blog"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs/{id} [put]
func EditBlogHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requireCaller(c)
		if !ok {
			return
		}
		var req dto.EditBlogRequest
		if !bindPayload(c, &req) {
			return
		}
		if err := svc.Edit(c.Request.Context(), caller, c.Param("id"), req); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusOK, services.MsgBlogEdited)
	}
}

// PublishBlogHandler godoc
// @Summary      Publish a blog
// @Tags         myblogs
// @Security     BearerAuth
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs/publish/{id} [put]
func PublishBlogHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requireCaller(c)
		if !ok {
			return
		}
		if err := svc.Publish(c.Request.Context(), caller, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusOK, services.MsgBlogPublished)
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete a blog
// @Tags         myblogs
// @Security     BearerAuth
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/blogs/{id} [delete]
func DeleteBlogHandler(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requireCaller(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusOK, services.MsgBlogDeleted)
	}
}

func blogResponse(blog dto.BlogDTO, msg string) dto.BlogResponseDTO {
	return dto.BlogResponseDTO{Success: true, Message: msg, Blog: blog}
}

func blogListResponse(page *dto.BlogListDTO) dto.BlogListResponseDTO {
	return dto.BlogListResponseDTO{Success: true, BlogListDTO: *page}
}
