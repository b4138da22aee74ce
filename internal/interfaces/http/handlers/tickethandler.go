package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketapp "dubhub/internal/application/ticket"
	ticketdomain "dubhub/internal/domain/ticket"
	"dubhub/internal/shared/logger"
	"dubhub/internal/shared/services/markdown"
	"dubhub/internal/shared/utils"
)

type TicketHandler struct {
	service  *ticketapp.Service
	markdown markdown.Service
	logger   logger.Interface
}

func NewTicketHandler(service *ticketapp.Service, md markdown.Service) *TicketHandler {
	return &TicketHandler{
		service:  service,
		markdown: md,
		logger:   logger.NewLogger().Named("ticket_handler"),
	}
}

type ticketListQuery struct {
	Tab         string `form:"tab"`
	Search      string `form:"search"`
	Status      string `form:"status"`
	Priority    string `form:"priority"`
	Type        string `form:"type"`
	ProductArea string `form:"productArea"`
}

// List returns the filtered, sorted ticket view for one tab.
func (h *TicketHandler) List(c *gin.Context) {
	var query ticketListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	tab := ticketdomain.Tab(query.Tab)
	if query.Tab == "" {
		tab = ticketdomain.TabActive
	}

	tickets := h.service.List(tab, ticketdomain.FilterState{
		Status:      query.Status,
		Priority:    query.Priority,
		Type:        query.Type,
		ProductArea: query.ProductArea,
	}, query.Search)

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tickets": tickets,
		"counts":  h.service.Counts(),
	})
}

// Counts returns the per-tab totals alone.
func (h *TicketHandler) Counts(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.service.Counts())
}

// Get returns one ticket with its rich-text fields rendered to HTML.
func (h *TicketHandler) Get(c *gin.Context) {
	t, err := h.service.Get(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	summaryHTML, err := h.markdown.ToHTMLSanitized(t.Summary)
	if err != nil {
		h.logger.Warnw("failed to render summary", "id", t.ID, "error", err)
	}
	detailsHTML, err := h.markdown.ToHTMLSanitized(t.Details)
	if err != nil {
		h.logger.Warnw("failed to render details", "id", t.ID, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket":      t,
		"summaryHtml": summaryHTML,
		"detailsHtml": detailsHTML,
		"daysActive":  t.DaysActive(),
	})
}

// CreateDraft opens a fresh draft ticket.
func (h *TicketHandler) CreateDraft(c *gin.Context) {
	utils.CreatedResponse(c, h.service.NewDraft(), "Draft created")
}

// Save persists the submitted ticket, creating it when a draft is open.
func (h *TicketHandler) Save(c *gin.Context) {
	var t ticketdomain.Ticket
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket payload")
		return
	}

	saved, err := h.service.Save(t)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Ticket saved successfully", saved)
}

// Select opens a persisted ticket.
func (h *TicketHandler) Select(c *gin.Context) {
	if err := h.service.Select(c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// Selected returns the open ticket or draft, if any.
func (h *TicketHandler) Selected(c *gin.Context) {
	t, ok := h.service.Selected()
	if !ok {
		utils.SuccessResponse(c, http.StatusOK, "", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", t)
}

// ClearSelection closes the open ticket or draft.
func (h *TicketHandler) ClearSelection(c *gin.Context) {
	h.service.ClearSelection()
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

type deleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// RequestDelete stages a deletion and returns its confirmation token.
func (h *TicketHandler) RequestDelete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid delete request")
		return
	}

	token, err := h.service.RequestBulkDelete(req.IDs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusAccepted, "Confirmation required", gin.H{"token": token})
}

// ConfirmDelete executes a staged deletion.
func (h *TicketHandler) ConfirmDelete(c *gin.Context) {
	removed, err := h.service.ConfirmDelete(c.Param("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Tickets deleted", gin.H{"deleted": removed})
}

// ToggleFavorite flips the favorite flag immediately, outside the edit flow.
func (h *TicketHandler) ToggleFavorite(c *gin.Context) {
	if err := h.service.ToggleFavorite(c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Favorite toggled", nil)
}

type bulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1"`
	Status string   `json:"status" binding:"required"`
}

// BulkSetStatus moves a set of tickets to a new status.
func (h *TicketHandler) BulkSetStatus(c *gin.Context) {
	var req bulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid bulk status request")
		return
	}

	if err := h.service.BulkSetStatus(req.IDs, ticketdomain.Status(req.Status)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

type addUpdateRequest struct {
	Author  string `json:"author" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// AddUpdate prepends an activity entry.
func (h *TicketHandler) AddUpdate(c *gin.Context) {
	var req addUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid update payload")
		return
	}

	if err := h.service.AddUpdate(c.Param("id"), req.Author, req.Comment); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Comment added", nil)
}

type editUpdateRequest struct {
	Author  string `json:"author" binding:"required"`
	Date    string `json:"date" binding:"required,usdate"`
	Comment string `json:"comment" binding:"required"`
}

// EditUpdate rewrites an activity entry.
func (h *TicketHandler) EditUpdate(c *gin.Context) {
	var req editUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid update payload")
		return
	}

	err := h.service.EditUpdate(c.Param("id"), c.Param("updateId"), req.Author, req.Date, req.Comment)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Comment updated", nil)
}

// RemoveUpdate deletes an activity entry.
func (h *TicketHandler) RemoveUpdate(c *gin.Context) {
	if err := h.service.RemoveUpdate(c.Param("id"), c.Param("updateId")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Comment removed", nil)
}
