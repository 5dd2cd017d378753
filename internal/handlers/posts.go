package handlers

import (
	"errors"
	"net/http"

	"personal_blog/internal/service"

	"github.com/gin-gonic/gin"
)

// CreatePostRequest is the new-post payload; the author comes from the
// authenticated token, not the body.
type CreatePostRequest struct {
	Title   string `json:"titulo" binding:"required"`
	Text    string `json:"texto" binding:"required"`
	ThemeID int    `json:"tema_id" binding:"required"`
}

// UpdatePostRequest rewrites an existing post.
type UpdatePostRequest struct {
	ID      int    `json:"id" binding:"required"`
	Title   string `json:"titulo" binding:"required"`
	Text    string `json:"texto" binding:"required"`
	ThemeID int    `json:"tema_id" binding:"required"`
}

// @Summary      List posts
// @Tags         postagens
// @Produce      json
// @Success      200  {array}   models.Post
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /postagens [get]
// @Security     BearerAuth
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Posts.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list posts", "posts_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Get post by id
// @Tags         postagens
// @Produce      json
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  models.Post
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /postagens/{id} [get]
// @Security     BearerAuth
func (h *Handler) getPost(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	p, err := h.services.Posts.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load post", "post_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Search posts by title
// @Tags         postagens
// @Produce      json
// @Param        titulo  path      string  true  "Title substring"
// @Success      200     {array}   models.Post
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /postagens/titulo/{titulo} [get]
// @Security     BearerAuth
func (h *Handler) searchPosts(c *gin.Context) {
	posts, err := h.services.Posts.SearchByTitle(c.Request.Context(), c.Param("titulo"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to search posts", "posts_search_failed", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Create a post
// @Tags         postagens
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePostRequest  true  "New post"
// @Success      201   {object}  models.Post
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "unknown theme"
// @Router       /postagens [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	var input CreatePostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	p, err := h.services.Posts.Create(c.Request.Context(), service.CreatePostParams{
		Title:   input.Title,
		Text:    input.Text,
		ThemeID: input.ThemeID,
		UserID:  c.GetInt("userId"),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "theme not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create post", "post_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a post
// @Tags         postagens
// @Accept       json
// @Produce      json
// @Param        body  body      UpdatePostRequest  true  "Post changes"
// @Success      200   {object}  models.Post
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /postagens/atualizar [put]
// @Security     BearerAuth
func (h *Handler) updatePost(c *gin.Context) {
	var input UpdatePostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	p, err := h.services.Posts.Update(c.Request.Context(), service.UpdatePostParams{
		ID:      input.ID,
		Title:   input.Title,
		Text:    input.Text,
		ThemeID: input.ThemeID,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post or theme not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to update post", "post_update_failed", err, "id", input.ID)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a post
// @Tags         postagens
// @Produce      json
// @Param        id   path  int  true  "Post id"
// @Success      204  "deleted"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /postagens/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePost(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Posts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete post", "post_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
