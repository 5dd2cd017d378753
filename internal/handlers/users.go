package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"personal_blog/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateUserRequest carries the id plus the fields to change. Omitted
// strings keep the stored value; a new senha is re-hashed server-side.
type UpdateUserRequest struct {
	ID       int    `json:"id" binding:"required"`
	Name     string `json:"nome"`
	Handle   string `json:"usuario"`
	Password string `json:"senha"`
	Photo    string `json:"foto"`
}

// parseIDParam reads the :id path segment; writes a 400 and returns false
// on garbage input.
func (h *Handler) parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /usuarios/all [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list users", "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get user by id
// @Tags         usuarios
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	u, err := h.services.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load user", "user_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update a user
// @Description  Re-hashes senha when present; a missing id fails with 400
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /usuarios/atualizar [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	var input UpdateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.Users.Update(c.Request.Context(), service.UpdateUserParams{
		ID:       input.ID,
		Name:     input.Name,
		Handle:   input.Handle,
		Password: input.Password,
		Photo:    input.Photo,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrDuplicateHandle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "usuario already registered"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "failed to update user", "user_update_failed", err, "id", input.ID)
		}
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Delete a user
// @Tags         usuarios
// @Produce      json
// @Param        id   path  int  true  "User id"
// @Success      204  "deleted"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete user", "user_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
