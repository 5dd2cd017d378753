package handlers

import (
	"net/http"

	"personal_blog/internal/logger"
	"personal_blog/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Live post feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsFeed)

	h.registerUserRoutes(router)
	h.registerPostRoutes(router)
	h.registerThemeRoutes(router)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/usuarios")
	{
		// register and login bypass the guard
		users.POST("/cadastrar", h.register)
		users.POST("/logar", h.login)

		protected := users.Group("", h.userIDMiddleware)
		{
			protected.GET("/all", h.listUsers)
			protected.GET("/:id", h.getUser)
			protected.PUT("/atualizar", h.updateUser)
			protected.DELETE("/:id", h.deleteUser)
		}
	}
}

func (h *Handler) registerPostRoutes(r *gin.Engine) {
	posts := r.Group("/postagens", h.userIDMiddleware)
	{
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)
		posts.GET("/titulo/:titulo", h.searchPosts)
		posts.POST("", h.createPost)
		posts.PUT("/atualizar", h.updatePost)
		posts.DELETE("/:id", h.deletePost)
	}
}

func (h *Handler) registerThemeRoutes(r *gin.Engine) {
	themes := r.Group("/temas", h.userIDMiddleware)
	{
		themes.GET("", h.listThemes)
		themes.GET("/:id", h.getTheme)
		themes.GET("/descricao/:descricao", h.searchThemes)
		themes.POST("", h.createTheme)
		themes.PUT("/atualizar", h.updateTheme)
		themes.DELETE("/:id", h.deleteTheme)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
