package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenpalms/resort-api/internal/application/service"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/response"
	"github.com/greenpalms/resort-api/pkg/apperror"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errInvalidReportType = apperror.NewBadRequestError("Invalid invoice type")

// ReportHandler handles report and dashboard HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) salesInput(c *gin.Context) (*service.SalesReportInput, error) {
	start, end, err := ParseDateRangeQuery(c, "start_date", "end_date")
	if err != nil {
		return nil, err
	}

	input := &service.SalesReportInput{StartDate: start, EndDate: end}
	if raw := c.Query("type"); raw != "" {
		t := enum.InvoiceType(raw)
		if !t.Valid() {
			return nil, errInvalidReportType
		}
		input.Type = &t
	}
	return input, nil
}

// Sales returns the sales report over ?start_date&end_date&type
func (h *ReportHandler) Sales(c *gin.Context) {
	input, err := h.salesInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.Sales(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report", report)
}

// SalesExcel downloads the sales report as a spreadsheet
func (h *ReportHandler) SalesExcel(c *gin.Context) {
	input, err := h.salesInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, filename, err := h.reportService.SalesExcel(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	serveExcel(c, filename, data)
}

// GST returns the GST report over ?start_date&end_date
func (h *ReportHandler) GST(c *gin.Context) {
	start, end, err := ParseDateRangeQuery(c, "start_date", "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.GST(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "GST report", report)
}

// GSTExcel downloads the GST report as a spreadsheet
func (h *ReportHandler) GSTExcel(c *gin.Context) {
	start, end, err := ParseDateRangeQuery(c, "start_date", "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	data, filename, err := h.reportService.GSTExcel(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	serveExcel(c, filename, data)
}

// KitchenItems returns the per-menu-item sales report
func (h *ReportHandler) KitchenItems(c *gin.Context) {
	start, end, err := ParseDateRangeQuery(c, "start_date", "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.KitchenItems(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Kitchen items report", report)
}

// KitchenItemsExcel downloads the menu item sales report as a spreadsheet
func (h *ReportHandler) KitchenItemsExcel(c *gin.Context) {
	start, end, err := ParseDateRangeQuery(c, "start_date", "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	data, filename, err := h.reportService.KitchenItemsExcel(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	serveExcel(c, filename, data)
}

// ResortDetails returns the detailed resort invoice listing
func (h *ReportHandler) ResortDetails(c *gin.Context) {
	start, end, err := ParseDateRangeQuery(c, "start_date", "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.ResortDetails(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Resort details report", report)
}

// ResortDetailsExcel downloads the resort detail listing as a spreadsheet
func (h *ReportHandler) ResortDetailsExcel(c *gin.Context) {
	start, end, err := ParseDateRangeQuery(c, "start_date", "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	data, filename, err := h.reportService.ResortDetailsExcel(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	serveExcel(c, filename, data)
}

// Dashboard returns today's and this month's revenue plus the open kitchen
// queue
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dash, err := h.reportService.BuildDashboard(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard", dash)
}

func serveExcel(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, excelContentType, data)
}
