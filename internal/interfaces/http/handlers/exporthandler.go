package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	dealershipapp "dubhub/internal/application/dealership"
	"dubhub/internal/application/export"
	resourceapp "dubhub/internal/application/resource"
	taskapp "dubhub/internal/application/task"
	ticketapp "dubhub/internal/application/ticket"
	"dubhub/internal/shared/logger"
	"dubhub/internal/shared/utils"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler serves collection snapshots as downloadable CSV or XLSX
// documents.
type ExportHandler struct {
	tickets     *ticketapp.Service
	dealerships *dealershipapp.Service
	resources   *resourceapp.Service
	tasks       *taskapp.Service
	exporter    *export.Service
	logger      logger.Interface
}

func NewExportHandler(
	tickets *ticketapp.Service,
	dealerships *dealershipapp.Service,
	resources *resourceapp.Service,
	tasks *taskapp.Service,
	exporter *export.Service,
) *ExportHandler {
	return &ExportHandler{
		tickets:     tickets,
		dealerships: dealerships,
		resources:   resources,
		tasks:       tasks,
		exporter:    exporter,
		logger:      logger.NewLogger().Named("export_handler"),
	}
}

func (h *ExportHandler) Tickets(c *gin.Context) {
	h.serve(c, export.TicketTable(h.tickets.All()))
}

func (h *ExportHandler) Dealerships(c *gin.Context) {
	h.serve(c, export.DealershipTable(h.dealerships.All()))
}

func (h *ExportHandler) Resources(c *gin.Context) {
	h.serve(c, export.ResourceTable(h.resources.All()))
}

func (h *ExportHandler) Tasks(c *gin.Context) {
	h.serve(c, export.TaskTable(h.tasks.All()))
}

func (h *ExportHandler) serve(c *gin.Context, table export.Table) {
	format := c.DefaultQuery("format", export.FormatCSV)

	data, err := h.exporter.Render(table, format)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	contentType := contentTypeCSV
	if format == export.FormatXLSX {
		contentType = contentTypeXLSX
	}

	fileName := export.FileName(table.Name, format, time.Now())
	h.logger.Infow("export download", "file", fileName, "rows", len(table.Rows))

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, contentType, data)
}
