package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Shrinila/productify-backend/internal/adapter/http/handlers"
	"github.com/Shrinila/productify-backend/internal/adapter/http/middleware"
	"github.com/Shrinila/productify-backend/internal/core/ports"
)

// RegisterRoutes wires the fixed wire contract: auth and task paths at the
// root, health endpoints alongside. Task routes resolve an optional bearer
// identity; auth routes never require one.
func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	tokens ports.TokenIssuer,
	authRequired bool,
) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	tasks := r.Group("/tasks")
	tasks.Use(middleware.IdentityMiddleware(tokens, authRequired))
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:ownerId", taskHandler.ListTasks)
		tasks.PUT("/:taskId", taskHandler.UpdateTask)
		tasks.DELETE("/:taskId", taskHandler.DeleteTask)
	}
}
