package handlers

import (
	"gamestore/internal/logger"
	"gamestore/internal/service"

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
// Policy: every mutation requires auth, reads stay public.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerUserRoutes(router)
	h.registerCatalogRoutes(router)

	// Live catalog feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsCatalogFeed)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	local := r.Group("/api/auth/local")
	{
		local.POST("/register", h.register)
		local.POST("/", h.login)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	r.GET("/api/users/me", h.authMiddleware, h.me)

	users := r.Group("/users", h.authMiddleware)
	{
		users.DELETE("/logout", h.logout)
		users.PUT("/change-password", h.changePassword)
	}
}

func (h *Handler) registerCatalogRoutes(r *gin.Engine) {
	free := r.Group("/api/free-games")
	{
		free.GET("/", h.listFreeGames)
		free.GET("/:name", h.getFreeGame)
		free.POST("/", h.authMiddleware, h.createFreeGame)
		free.PUT("/:id", h.authMiddleware, h.updateFreeGame)
		free.DELETE("/:name", h.authMiddleware, h.deleteFreeGame)
	}

	official := r.Group("/api/official-games")
	{
		official.GET("/", h.listOfficialGames)
		official.GET("/:name", h.getOfficialGame)
		official.POST("/", h.authMiddleware, h.createOfficialGame)
		official.PUT("/:id", h.authMiddleware, h.updateOfficialGame)
		official.DELETE("/:name", h.authMiddleware, h.deleteOfficialGame)
	}
}
