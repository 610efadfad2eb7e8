package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/internal/auth"
	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// listPosts handles GET /api/v1/posts
// @Summary List posts
// @Description Page through the tenant's blog posts, newest first
// @Tags Blog
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param status query string false "Filter by status"
// @Param author_id query string false "Filter by author"
// @Param search query string false "Search title, summary and body"
// @Success 200 {object} result.PaginatedResult[models.Post] "Page of posts"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /posts [get]
func (s *Server) listPosts(c echo.Context) error {
	page, err := s.storage.PagePosts(c.Request().Context(), s.authMiddle.Tenant(c),
		c.QueryParam("status"), c.QueryParam("author_id"), parseParams(c))
	if err != nil {
		return InternalError("Failed to list posts", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// getPost handles GET /api/v1/posts/:id
// @Summary Get post
// @Tags Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} result.Result[models.Post] "Post"
// @Failure 404 {object} APIError "Not found"
// @Router /posts/{id} [get]
func (s *Server) getPost(c echo.Context) error {
	id := c.Param("id")
	post, err := s.storage.GetPost(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "Post", id)
	}
	return c.JSON(http.StatusOK, result.Ok(post))
}

// getPostBySlug handles GET /api/v1/posts/slug/:slug
// @Summary Get post by slug
// @Tags Blog
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Post slug"
// @Success 200 {object} result.Result[models.Post] "Post"
// @Failure 404 {object} APIError "Not found"
// @Router /posts/slug/{slug} [get]
func (s *Server) getPostBySlug(c echo.Context) error {
	slug := c.Param("slug")
	post, err := s.storage.GetPostBySlug(c.Request().Context(), s.authMiddle.Tenant(c), slug)
	if err != nil {
		return storageError(err, "Post", slug)
	}
	return c.JSON(http.StatusOK, result.Ok(post))
}

// listPostsByTag handles GET /api/v1/posts/tag/:tag
// @Summary List published posts by tag
// @Tags Blog
// @Produce json
// @Security BearerAuth
// @Param tag path string true "Tag"
// @Success 200 {object} result.Result[[]models.Post] "Published posts carrying the tag"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /posts/tag/{tag} [get]
func (s *Server) listPostsByTag(c echo.Context) error {
	posts, err := s.storage.ListPostsByTag(c.Request().Context(), s.authMiddle.Tenant(c), c.Param("tag"))
	if err != nil {
		return InternalError("Failed to list posts", err.Error())
	}
	return c.JSON(http.StatusOK, result.Ok(posts))
}

// createPost handles POST /api/v1/posts
// @Summary Create post
// @Description Create a blog post; the author defaults to the current user
// @Tags Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.Post true "Post"
// @Success 201 {object} result.Result[models.Post] "Created post"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Failure 409 {object} APIError "Duplicate slug"
// @Router /posts [post]
func (s *Server) createPost(c echo.Context) error {
	var post models.Post
	if err := c.Bind(&post); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	post.ID = models.GenerateID("post")
	post.TenantID = s.authMiddle.Tenant(c)
	if post.AuthorID == "" {
		if userID, ok := auth.GetUserID(c); ok {
			post.AuthorID = userID
		}
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if res := s.validator.Validate(&post); !res.Valid {
		return ValidationFailedError("Post validation failed", fieldErrorMap(res))
	}

	if err := s.storage.CreatePost(c.Request().Context(), &post); err != nil {
		return storageError(err, "Post", post.ID)
	}

	s.broadcast(post.TenantID, "post", EventCreated, &post)
	return c.JSON(http.StatusCreated, result.Ok(&post))
}

// updatePost handles PUT /api/v1/posts/:id
// @Summary Update post
// @Description Update a post; moving it to published stamps PublishedAt once
// @Tags Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param post body models.Post true "Post"
// @Success 200 {object} result.Result[models.Post] "Updated post"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /posts/{id} [put]
func (s *Server) updatePost(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	existing, err := s.storage.GetPost(ctx, tenant, id)
	if err != nil {
		return storageError(err, "Post", id)
	}

	var post models.Post
	if err := c.Bind(&post); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	wasPublished := existing.Status == models.PostStatusPublished

	post.ID = existing.ID
	post.TenantID = existing.TenantID
	post.Slug = existing.Slug
	post.AuthorID = existing.AuthorID
	post.CreatedAt = existing.CreatedAt
	post.PublishedAt = existing.PublishedAt
	if post.Status == "" {
		post.Status = existing.Status
	}

	if res := s.validator.Validate(&post); !res.Valid {
		return ValidationFailedError("Post validation failed", fieldErrorMap(res))
	}

	if err := s.storage.UpdatePost(ctx, &post); err != nil {
		return storageError(err, "Post", id)
	}

	if !wasPublished && post.Status == models.PostStatusPublished {
		s.broadcast(tenant, "post", EventPublished, &post)
	} else {
		s.broadcast(tenant, "post", EventUpdated, &post)
	}
	return c.JSON(http.StatusOK, result.Ok(&post))
}

// deletePost handles DELETE /api/v1/posts/:id
// @Summary Delete post
// @Tags Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Router /posts/{id} [delete]
func (s *Server) deletePost(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	if err := s.storage.DeletePost(c.Request().Context(), tenant, id); err != nil {
		return storageError(err, "Post", id)
	}

	s.broadcast(tenant, "post", EventDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, MessageResponse{Message: "post deleted", ID: id})
}
