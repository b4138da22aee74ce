package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dubhub/internal/domain/catalog"
	"dubhub/internal/shared/utils"
)

// CatalogHandler serves the static DMT product reference table.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Products returns the full catalog in display order.
func (h *CatalogHandler) Products(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", catalog.Products())
}
