package handlers

import (
	"errors"
	"net/http"

	"personal_blog/internal/models"
	"personal_blog/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateThemeRequest is the new-theme payload.
type CreateThemeRequest struct {
	Description string `json:"descricao" binding:"required"`
}

// UpdateThemeRequest rewrites an existing theme.
type UpdateThemeRequest struct {
	ID          int    `json:"id" binding:"required"`
	Description string `json:"descricao" binding:"required"`
}

// @Summary      List themes
// @Tags         temas
// @Produce      json
// @Success      200  {array}   models.Theme
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /temas [get]
// @Security     BearerAuth
func (h *Handler) listThemes(c *gin.Context) {
	themes, err := h.services.Themes.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list themes", "themes_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, themes)
}

// @Summary      Get theme by id
// @Tags         temas
// @Produce      json
// @Param        id   path      int  true  "Theme id"
// @Success      200  {object}  models.Theme
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /temas/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTheme(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	t, err := h.services.Themes.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "theme not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load theme", "theme_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Search themes by description
// @Tags         temas
// @Produce      json
// @Param        descricao  path      string  true  "Description substring"
// @Success      200        {array}   models.Theme
// @Failure      401        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /temas/descricao/{descricao} [get]
// @Security     BearerAuth
func (h *Handler) searchThemes(c *gin.Context) {
	themes, err := h.services.Themes.SearchByDescription(c.Request.Context(), c.Param("descricao"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to search themes", "themes_search_failed", err)
		return
	}
	c.JSON(http.StatusOK, themes)
}

// @Summary      Create a theme
// @Tags         temas
// @Accept       json
// @Produce      json
// @Param        body  body      CreateThemeRequest  true  "New theme"
// @Success      201   {object}  models.Theme
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /temas [post]
// @Security     BearerAuth
func (h *Handler) createTheme(c *gin.Context) {
	var input CreateThemeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	t, err := h.services.Themes.Create(c.Request.Context(), input.Description)
	if err != nil {
		if errors.Is(err, service.ErrEmptyDescription) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "descricao is empty"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create theme", "theme_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary      Update a theme
// @Tags         temas
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateThemeRequest  true  "Theme changes"
// @Success      200   {object}  models.Theme
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /temas/atualizar [put]
// @Security     BearerAuth
func (h *Handler) updateTheme(c *gin.Context) {
	var input UpdateThemeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	t, err := h.services.Themes.Update(c.Request.Context(), models.Theme{
		ID:          input.ID,
		Description: input.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "theme not found"})
		case errors.Is(err, service.ErrEmptyDescription):
			c.JSON(http.StatusBadRequest, gin.H{"error": "descricao is empty"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "failed to update theme", "theme_update_failed", err, "id", input.ID)
		}
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Delete a theme
// @Description  Posts under the theme are removed as well
// @Tags         temas
// @Produce      json
// @Param        id   path  int  true  "Theme id"
// @Success      204  "deleted"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /temas/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTheme(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Themes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "theme not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete theme", "theme_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
