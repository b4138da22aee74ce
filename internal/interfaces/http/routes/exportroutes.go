package routes

import (
	"github.com/gin-gonic/gin"

	"dubhub/internal/interfaces/http/handlers"
)

type ExportRouteConfig struct {
	ExportHandler  *handlers.ExportHandler
	CatalogHandler *handlers.CatalogHandler
}

func SetupExportRoutes(group *gin.RouterGroup, config *ExportRouteConfig) {
	exports := group.Group("/exports")
	{
		exports.GET("/tickets", config.ExportHandler.Tickets)
		exports.GET("/dealerships", config.ExportHandler.Dealerships)
		exports.GET("/resources", config.ExportHandler.Resources)
		exports.GET("/tasks", config.ExportHandler.Tasks)
	}

	group.GET("/catalog/products", config.CatalogHandler.Products)
}
