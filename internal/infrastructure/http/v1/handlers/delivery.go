package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain"
	"postavka/internal/domain/deliveries"
	"postavka/internal/infrastructure/http/v1/dto"
)

// DeliveryHandler handles HTTP requests for delivery documents.
type DeliveryHandler struct {
	*BaseHandler
	service *deliveries.Service
}

// NewDeliveryHandler creates a new delivery handler.
func NewDeliveryHandler(base *BaseHandler, service *deliveries.Service) *DeliveryHandler {
	return &DeliveryHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /deliveries - list with filtering and pagination.
func (h *DeliveryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := deliveries.ListFilter{
		ListFilter: domain.ListFilter{
			Search:  c.Query("search"),
			OrderBy: c.Query("orderBy"),
			Limit:   h.ParseIntQuery(c, "limit", 50),
			Offset:  h.ParseIntQuery(c, "offset", 0),
		},
	}

	if supplierStr := c.Query("supplierId"); supplierStr != "" {
		supplierID, err := id.Parse(supplierStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid supplierId format"))
			return
		}
		filter.SupplierID = &supplierID
	}

	if fromStr := c.Query("dateFrom"); fromStr != "" {
		from, err := types.ParseDate(fromStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateFrom format, expected YYYY-MM-DD"))
			return
		}
		filter.DateFrom = &from
	}

	if toStr := c.Query("dateTo"); toStr != "" {
		to, err := types.ParseDate(toStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateTo format, expected YYYY-MM-DD"))
			return
		}
		filter.DateTo = &to
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	// Flat array body; pagination total rides in a header.
	items := make([]*dto.DeliveryResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromDelivery(item)
	}

	c.Header("X-Total-Count", strconv.FormatInt(result.TotalCount, 10))
	c.JSON(http.StatusOK, items)
}

// Get handles GET /deliveries/:id - get single delivery with items.
func (h *DeliveryHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromDelivery(doc))
}

// Create handles POST /deliveries - commit a new delivery.
// All line prices are resolved against the delivery date; when any line
// has no valid price, nothing is saved.
func (h *DeliveryHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SaveDeliveryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.Commit(ctx, req.ToSnapshot(), nil)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromDelivery(doc))
}

// Update handles PUT /deliveries/:id - recommit an existing delivery.
// The document is fully replaced and every line price re-resolved.
func (h *DeliveryHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SaveDeliveryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.Commit(ctx, req.ToSnapshot(), &docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromDelivery(doc))
}

// Delete handles DELETE /deliveries/:id - remove delivery with items.
func (h *DeliveryHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
