package routes

import (
	"github.com/gin-gonic/gin"

	"dubhub/internal/interfaces/http/handlers"
)

type ResourceRouteConfig struct {
	ResourceHandler *handlers.ResourceHandler
}

func SetupResourceRoutes(group *gin.RouterGroup, config *ResourceRouteConfig) {
	resources := group.Group("/resources")
	{
		resources.GET("", config.ResourceHandler.List)
		resources.PUT("", config.ResourceHandler.Save)

		resources.POST("/draft", config.ResourceHandler.CreateDraft)
		resources.GET("/selected", config.ResourceHandler.Selected)
		resources.DELETE("/selection", config.ResourceHandler.ClearSelection)

		resources.POST("/delete-requests/:token/confirm", config.ResourceHandler.ConfirmDelete)

		resources.POST("/:id/select", config.ResourceHandler.Select)
		resources.GET("/:id", config.ResourceHandler.Get)
		resources.DELETE("/:id", config.ResourceHandler.RequestDelete)
	}
}
