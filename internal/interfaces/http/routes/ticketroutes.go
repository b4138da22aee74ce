package routes

import (
	"github.com/gin-gonic/gin"

	"dubhub/internal/interfaces/http/handlers"
)

type TicketRouteConfig struct {
	TicketHandler *handlers.TicketHandler
}

func SetupTicketRoutes(group *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := group.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		tickets.GET("", config.TicketHandler.List)
		tickets.GET("/counts", config.TicketHandler.Counts)
		tickets.PUT("", config.TicketHandler.Save)

		tickets.POST("/draft", config.TicketHandler.CreateDraft)
		tickets.GET("/selected", config.TicketHandler.Selected)
		tickets.DELETE("/selection", config.TicketHandler.ClearSelection)

		tickets.POST("/delete-requests", config.TicketHandler.RequestDelete)
		tickets.POST("/delete-requests/:token/confirm", config.TicketHandler.ConfirmDelete)
		tickets.PATCH("/status", config.TicketHandler.BulkSetStatus)

		tickets.POST("/:id/select", config.TicketHandler.Select)
		tickets.POST("/:id/favorite", config.TicketHandler.ToggleFavorite)
		tickets.POST("/:id/updates", config.TicketHandler.AddUpdate)
		tickets.PUT("/:id/updates/:updateId", config.TicketHandler.EditUpdate)
		tickets.DELETE("/:id/updates/:updateId", config.TicketHandler.RemoveUpdate)

		tickets.GET("/:id", config.TicketHandler.Get)
	}
}
