package routes

import (
	"github.com/gin-gonic/gin"

	"dubhub/internal/interfaces/http/handlers"
)

type DealershipRouteConfig struct {
	DealershipHandler *handlers.DealershipHandler
}

func SetupDealershipRoutes(group *gin.RouterGroup, config *DealershipRouteConfig) {
	dealerships := group.Group("/dealerships")
	{
		dealerships.GET("", config.DealershipHandler.List)
		dealerships.PUT("", config.DealershipHandler.Save)
		dealerships.GET("/client-names", config.DealershipHandler.ClientNames)

		dealerships.POST("/draft", config.DealershipHandler.CreateDraft)
		dealerships.GET("/selected", config.DealershipHandler.Selected)
		dealerships.DELETE("/selection", config.DealershipHandler.ClearSelection)

		dealerships.POST("/delete-requests/:token/confirm", config.DealershipHandler.ConfirmDelete)

		dealerships.POST("/:id/select", config.DealershipHandler.Select)
		dealerships.GET("/:id", config.DealershipHandler.Get)
		dealerships.DELETE("/:id", config.DealershipHandler.RequestDelete)
	}
}
