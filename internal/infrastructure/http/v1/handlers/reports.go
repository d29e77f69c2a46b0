package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain/reports"
	"postavka/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetDeliveryCost handles GET /reports
func (h *ReportsHandler) GetDeliveryCost(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.DeliveryCostReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reports.DeliveryCostFilter{}

	if req.SupplierID != "" {
		supplierID, err := id.Parse(req.SupplierID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid supplierId format"))
			return
		}
		filter.SupplierID = supplierID
	}

	if req.StartDate != "" {
		from, err := types.ParseDate(req.StartDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid startDate format, expected YYYY-MM-DD"))
			return
		}
		filter.FromDate = from
	}

	if req.EndDate != "" {
		to, err := types.ParseDate(req.EndDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid endDate format, expected YYYY-MM-DD"))
			return
		}
		filter.ToDate = to
	}

	if req.ProductID != "" {
		productID, err := id.Parse(req.ProductID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid productId format"))
			return
		}
		filter.ProductID = &productID
	}

	report, err := h.service.GetDeliveryCost(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	// The body is a flat array of rows; aggregate figures ride in headers.
	c.Header("X-Total-Count", strconv.Itoa(report.TotalRows))
	c.Header("X-Grand-Total", report.GrandTotal.String())
	c.JSON(http.StatusOK, dto.FromDeliveryCostRows(report))
}
