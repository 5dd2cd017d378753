package handlers

import (
	"errors"
	"net/http"

	"personal_blog/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"nome" binding:"required"`
	Handle   string `json:"usuario" binding:"required"`
	Password string `json:"senha" binding:"required"`
	Photo    string `json:"foto"`
}

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Handle   string `json:"usuario" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

// @Summary      Register a new user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "New user"
// @Success      201   {object}  models.User
// @Failure      400   {object}  map[string]string  "bad body or handle taken"
// @Failure      500   {object}  map[string]string
// @Router       /usuarios/cadastrar [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.SignUp(c.Request.Context(), service.SignUpParams{
		Name:     input.Name,
		Handle:   input.Handle,
		Password: input.Password,
		Photo:    input.Photo,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateHandle) {
			if h.log != nil {
				h.log.Infow("register_handle_taken", "usuario", input.Handle)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "usuario already registered"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to register user", "register_failed", err, "usuario", input.Handle)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// @Summary      Login
// @Description  Returns a bearer token on valid credentials
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /usuarios/logar [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Handle, input.Password)
	if err != nil {
		// Unknown handle and wrong password get the same external answer;
		// the log keeps the distinction for operability.
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			if h.log != nil {
				h.log.Infow("login_rejected", "usuario", input.Handle, "err", err)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to login", "login_failed", err, "usuario", input.Handle)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
