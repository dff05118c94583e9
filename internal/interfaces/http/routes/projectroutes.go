package routes

import (
	"github.com/gin-gonic/gin"

	projecthandler "ddportal/internal/interfaces/http/handlers/project"
	"ddportal/internal/interfaces/http/middleware"
	"ddportal/internal/shared/authorization"
)

type ProjectRouteConfig struct {
	ProjectHandler *projecthandler.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		projects.GET("", config.ProjectHandler.ListProjects)
		projects.POST("",
			authorization.RequireAdmin(),
			config.ProjectHandler.CreateProject)

		// Specific action endpoints (must come BEFORE bare /:id handlers)
		projects.POST("/:id/phases",
			authorization.RequireAdmin(),
			config.ProjectHandler.CreatePhase)
		projects.PUT("/:id/phases/order",
			authorization.RequireAdmin(),
			config.ProjectHandler.ReorderPhases)
		projects.POST("/:id/phases/apply-template",
			authorization.RequireAdmin(),
			config.ProjectHandler.ApplyTemplate)

		// Generic parameterized routes (must come LAST)
		projects.GET("/:id", config.ProjectHandler.GetProject)
		projects.PUT("/:id",
			authorization.RequireAdmin(),
			config.ProjectHandler.UpdateProject)
		projects.DELETE("/:id",
			authorization.RequireAdmin(),
			config.ProjectHandler.DeleteProject)
	}

	phases := engine.Group("/phases")
	phases.Use(config.AuthMiddleware.RequireAuth())
	phases.Use(authorization.RequireAdmin())
	{
		phases.PUT("/:id/status", config.ProjectHandler.SetPhaseStatus)
		phases.PUT("/:id", config.ProjectHandler.UpdatePhase)
		phases.DELETE("/:id", config.ProjectHandler.DeletePhase)
	}

	templates := engine.Group("/phase-templates")
	templates.Use(config.AuthMiddleware.RequireAuth())
	templates.Use(authorization.RequireAdmin())
	{
		templates.GET("", config.ProjectHandler.ListTemplates)
		templates.POST("", config.ProjectHandler.CreateTemplate)
	}
}
