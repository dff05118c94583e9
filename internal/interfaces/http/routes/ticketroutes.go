package routes

import (
	"github.com/gin-gonic/gin"

	tickethandler "ddportal/internal/interfaces/http/handlers/ticket"
	"ddportal/internal/interfaces/http/middleware"
	"ddportal/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandler.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimit throttles the write endpoints clients can hit. Nil disables.
	RateLimit gin.HandlerFunc
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.GET("", config.TicketHandler.ListTickets)
		if config.RateLimit != nil {
			tickets.POST("", config.RateLimit, config.TicketHandler.CreateTicket)
		} else {
			tickets.POST("", config.TicketHandler.CreateTicket)
		}

		// Specific action endpoints (must come BEFORE bare /:id handlers)
		tickets.POST("/:id/claim",
			authorization.RequireAdmin(),
			config.TicketHandler.ClaimTicket)
		tickets.POST("/:id/unclaim",
			authorization.RequireAdmin(),
			config.TicketHandler.UnclaimTicket)
		tickets.POST("/:id/resolve",
			authorization.RequireAdmin(),
			config.TicketHandler.ResolveTicket)
		tickets.PUT("/:id/status",
			authorization.RequireAdmin(),
			config.TicketHandler.SetStatus)
		if config.RateLimit != nil {
			tickets.POST("/:id/comments", config.RateLimit, config.TicketHandler.AddComment)
		} else {
			tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		}
		tickets.POST("/:id/time-entries",
			authorization.RequireAdmin(),
			config.TicketHandler.LogTime)
		tickets.GET("/:id/time-entries",
			authorization.RequireAdmin(),
			config.TicketHandler.ListTimeEntries)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}

	timeEntries := engine.Group("/time-entries")
	timeEntries.Use(config.AuthMiddleware.RequireAuth())
	timeEntries.Use(authorization.RequireAdmin())
	{
		timeEntries.PUT("/:id", config.TicketHandler.UpdateTimeEntry)
		timeEntries.DELETE("/:id", config.TicketHandler.DeleteTimeEntry)
	}
}
