package handlers

import (
	_ "taskflow/docs"
	"taskflow/internal/logger"
	"taskflow/internal/models"
	"taskflow/internal/service"

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
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.tracingMiddleware, h.accessLogMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerAuthRoutes(api)
		h.registerTaskRoutes(api)
		h.registerCategoryRoutes(api)
		h.registerCalendarRoutes(api)
		h.registerAdminRoutes(api)
	}

	// Live task list over WebSocket; auth is checked before the upgrade
	router.GET("/ws/tasks", h.wsTasks)

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	api.POST("/login", h.login)
	api.POST("/register", h.register)
}

func (h *Handler) registerTaskRoutes(api *gin.RouterGroup) {
	tasks := api.Group("/tasks")
	{
		// listing without a valid token yields an empty array
		tasks.GET("", h.optionalUserIdMiddleware, h.listTasks)
		member := h.authorizedAs(models.RoleUser)
		tasks.POST("", h.userIdMiddleware, member, h.createTask)
		tasks.PUT("/:id", h.userIdMiddleware, member, h.updateTask)
		tasks.DELETE("/:id", h.userIdMiddleware, member, h.deleteTask)
	}
}

func (h *Handler) registerCategoryRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories", h.userIdMiddleware, h.authorizedAs(models.RoleUser))
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
	}
}

func (h *Handler) registerCalendarRoutes(api *gin.RouterGroup) {
	api.GET("/calendar/tasks", h.optionalUserIdMiddleware, h.calendarTasks)
}

func (h *Handler) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.userIdMiddleware, h.authorizedAs(models.RoleAdmin))
	{
		admin.GET("/stats", h.adminStats)
		admin.GET("/users", h.adminUsers)
		admin.GET("/all-tasks", h.adminAllTasks)
	}
}
