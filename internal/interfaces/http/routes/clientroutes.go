package routes

import (
	"github.com/gin-gonic/gin"

	clienthandler "ddportal/internal/interfaces/http/handlers/client"
	"ddportal/internal/interfaces/http/middleware"
	"ddportal/internal/shared/authorization"
)

type ClientRouteConfig struct {
	ClientHandler  *clienthandler.ClientHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupClientRoutes(engine *gin.Engine, config *ClientRouteConfig) {
	clients := engine.Group("/clients")
	clients.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations are admin only; a client user reads its own
		// record through GET /clients/:id.
		clients.GET("",
			authorization.RequireAdmin(),
			config.ClientHandler.ListClients)
		clients.POST("",
			authorization.RequireAdmin(),
			config.ClientHandler.CreateClient)

		// Specific action endpoints (must come BEFORE bare /:id handlers)
		clients.POST("/:id/support-cycle/reset",
			authorization.RequireAdmin(),
			config.ClientHandler.ResetSupportCycle)

		// Generic parameterized routes (must come LAST)
		clients.GET("/:id", config.ClientHandler.GetClient)
		clients.PUT("/:id",
			authorization.RequireAdmin(),
			config.ClientHandler.UpdateClient)
		clients.DELETE("/:id",
			authorization.RequireAdmin(),
			config.ClientHandler.ArchiveClient)
	}
}
