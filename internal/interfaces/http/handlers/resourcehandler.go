package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resourceapp "dubhub/internal/application/resource"
	res "dubhub/internal/domain/resource"
	"dubhub/internal/shared/logger"
	"dubhub/internal/shared/services/markdown"
	"dubhub/internal/shared/utils"
)

type ResourceHandler struct {
	service  *resourceapp.Service
	markdown markdown.Service
	logger   logger.Interface
}

func NewResourceHandler(service *resourceapp.Service, md markdown.Service) *ResourceHandler {
	return &ResourceHandler{
		service:  service,
		markdown: md,
		logger:   logger.NewLogger().Named("resource_handler"),
	}
}

type resourceListQuery struct {
	Category string `form:"category"`
	Scope    string `form:"scope"`
	Search   string `form:"search"`
}

// List returns the filtered, date-sorted resource view.
func (h *ResourceHandler) List(c *gin.Context) {
	var query resourceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.service.List(res.FilterState{
		Category: query.Category,
		Scope:    query.Scope,
		Search:   query.Search,
	}))
}

// Get returns one resource with its description rendered to HTML.
func (h *ResourceHandler) Get(c *gin.Context) {
	r, err := h.service.Get(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	descriptionHTML, err := h.markdown.ToHTMLSanitized(r.Description)
	if err != nil {
		h.logger.Warnw("failed to render description", "id", r.ID, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"resource":        r,
		"descriptionHtml": descriptionHTML,
	})
}

// CreateDraft opens a fresh draft resource.
func (h *ResourceHandler) CreateDraft(c *gin.Context) {
	utils.CreatedResponse(c, h.service.NewDraft(), "Draft created")
}

// Save persists the submitted resource, creating it when a draft is open.
func (h *ResourceHandler) Save(c *gin.Context) {
	var r res.Resource
	if err := c.ShouldBindJSON(&r); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid resource payload")
		return
	}

	saved, err := h.service.Save(r)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Resource saved successfully", saved)
}

// Select opens a persisted resource.
func (h *ResourceHandler) Select(c *gin.Context) {
	if err := h.service.Select(c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// Selected returns the open resource or draft, if any.
func (h *ResourceHandler) Selected(c *gin.Context) {
	r, ok := h.service.Selected()
	if !ok {
		utils.SuccessResponse(c, http.StatusOK, "", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", r)
}

// ClearSelection closes the open resource or draft.
func (h *ResourceHandler) ClearSelection(c *gin.Context) {
	h.service.ClearSelection()
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// RequestDelete stages a deletion and returns its confirmation token.
func (h *ResourceHandler) RequestDelete(c *gin.Context) {
	token, err := h.service.RequestDelete(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusAccepted, "Confirmation required", gin.H{"token": token})
}

// ConfirmDelete executes a staged deletion.
func (h *ResourceHandler) ConfirmDelete(c *gin.Context) {
	removed, err := h.service.ConfirmDelete(c.Param("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Resource deleted", gin.H{"deleted": removed})
}
