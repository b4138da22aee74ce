package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dealershipapp "dubhub/internal/application/dealership"
	dlr "dubhub/internal/domain/dealership"
	"dubhub/internal/shared/logger"
	"dubhub/internal/shared/utils"
)

type DealershipHandler struct {
	service *dealershipapp.Service
	logger  logger.Interface
}

func NewDealershipHandler(service *dealershipapp.Service) *DealershipHandler {
	return &DealershipHandler{
		service: service,
		logger:  logger.NewLogger().Named("dealership_handler"),
	}
}

type dealershipListQuery struct {
	Tab    string `form:"tab"`
	Search string `form:"search"`
}

// List returns the filtered, alphabetized account view for one tab.
func (h *DealershipHandler) List(c *gin.Context) {
	var query dealershipListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	tab := dlr.Tab(query.Tab)
	if query.Tab == "" {
		tab = dlr.TabActive
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"dealerships": h.service.List(tab, query.Search),
		"counts":      h.service.Counts(),
	})
}

// ClientNames returns the distinct account names for the ticket client
// dropdown.
func (h *DealershipHandler) ClientNames(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.service.ClientNames())
}

// Get returns one account plus its derived total selling price.
func (h *DealershipHandler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"dealership":        d,
		"totalSellingPrice": d.TotalSellingPrice(),
	})
}

// CreateDraft opens a fresh draft account.
func (h *DealershipHandler) CreateDraft(c *gin.Context) {
	utils.CreatedResponse(c, h.service.NewDraft(), "Draft created")
}

// Save persists the submitted account, creating it when a draft is open.
func (h *DealershipHandler) Save(c *gin.Context) {
	var d dlr.Dealership
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid dealership payload")
		return
	}

	saved, err := h.service.Save(d)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Dealership saved successfully", saved)
}

// Select opens a persisted account.
func (h *DealershipHandler) Select(c *gin.Context) {
	if err := h.service.Select(c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// Selected returns the open account or draft, if any.
func (h *DealershipHandler) Selected(c *gin.Context) {
	d, ok := h.service.Selected()
	if !ok {
		utils.SuccessResponse(c, http.StatusOK, "", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", d)
}

// ClearSelection closes the open account or draft.
func (h *DealershipHandler) ClearSelection(c *gin.Context) {
	h.service.ClearSelection()
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// RequestDelete stages a deletion and returns its confirmation token.
func (h *DealershipHandler) RequestDelete(c *gin.Context) {
	token, err := h.service.RequestDelete(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusAccepted, "Confirmation required", gin.H{"token": token})
}

// ConfirmDelete executes a staged deletion.
func (h *DealershipHandler) ConfirmDelete(c *gin.Context) {
	removed, err := h.service.ConfirmDelete(c.Param("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Dealership deleted", gin.H{"deleted": removed})
}
