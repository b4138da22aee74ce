package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	taskapp "dubhub/internal/application/task"
	taskdomain "dubhub/internal/domain/task"
	"dubhub/internal/shared/logger"
	"dubhub/internal/shared/utils"
)

type TaskHandler struct {
	service *taskapp.Service
	logger  logger.Interface
}

func NewTaskHandler(service *taskapp.Service) *TaskHandler {
	return &TaskHandler{
		service: service,
		logger:  logger.NewLogger().Named("task_handler"),
	}
}

type taskListQuery struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
}

// List returns the filtered task view with completed tasks last.
func (h *TaskHandler) List(c *gin.Context) {
	var query taskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tasks": h.service.List(taskdomain.FilterState{
			Status:   query.Status,
			Priority: query.Priority,
			Search:   query.Search,
		}),
		"counts": h.service.Counts(),
	})
}

// Get returns one task.
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.service.Get(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", t)
}

type quickAddRequest struct {
	Title string `json:"title" binding:"required"`
}

// QuickAdd creates a task from a bare title.
func (h *TaskHandler) QuickAdd(c *gin.Context) {
	var req quickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid task payload")
		return
	}

	created, err := h.service.QuickAdd(req.Title)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, created, "Task created")
}

// CreateDraft opens a fresh draft task for the full form.
func (h *TaskHandler) CreateDraft(c *gin.Context) {
	utils.CreatedResponse(c, h.service.NewDraft(), "Draft created")
}

// Save persists the submitted task.
func (h *TaskHandler) Save(c *gin.Context) {
	var t taskdomain.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid task payload")
		return
	}

	saved, err := h.service.Save(t)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Task saved successfully", saved)
}

// ToggleComplete flips a task between Completed and To Do.
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	if err := h.service.ToggleComplete(c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Task toggled", nil)
}

// Select opens a task.
func (h *TaskHandler) Select(c *gin.Context) {
	if err := h.service.Select(c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// Selected returns the open task, if any.
func (h *TaskHandler) Selected(c *gin.Context) {
	t, ok := h.service.Selected()
	if !ok {
		utils.SuccessResponse(c, http.StatusOK, "", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", t)
}

// ClearSelection closes the open task.
func (h *TaskHandler) ClearSelection(c *gin.Context) {
	h.service.ClearSelection()
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// RequestDelete stages a deletion and returns its confirmation token.
func (h *TaskHandler) RequestDelete(c *gin.Context) {
	token, err := h.service.RequestDelete(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusAccepted, "Confirmation required", gin.H{"token": token})
}

// ConfirmDelete executes a staged deletion.
func (h *TaskHandler) ConfirmDelete(c *gin.Context) {
	removed, err := h.service.ConfirmDelete(c.Param("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Task deleted", gin.H{"deleted": removed})
}
