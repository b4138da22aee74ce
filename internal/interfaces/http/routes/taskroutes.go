package routes

import (
	"github.com/gin-gonic/gin"

	"dubhub/internal/interfaces/http/handlers"
)

type TaskRouteConfig struct {
	TaskHandler *handlers.TaskHandler
}

func SetupTaskRoutes(group *gin.RouterGroup, config *TaskRouteConfig) {
	tasks := group.Group("/tasks")
	{
		tasks.GET("", config.TaskHandler.List)
		tasks.PUT("", config.TaskHandler.Save)
		tasks.POST("/quick-add", config.TaskHandler.QuickAdd)
		tasks.POST("/draft", config.TaskHandler.CreateDraft)

		tasks.GET("/selected", config.TaskHandler.Selected)
		tasks.DELETE("/selection", config.TaskHandler.ClearSelection)

		tasks.POST("/delete-requests/:token/confirm", config.TaskHandler.ConfirmDelete)

		tasks.POST("/:id/select", config.TaskHandler.Select)
		tasks.POST("/:id/toggle", config.TaskHandler.ToggleComplete)
		tasks.GET("/:id", config.TaskHandler.Get)
		tasks.DELETE("/:id", config.TaskHandler.RequestDelete)
	}
}
