package dto

import (
	"time"

	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain/deliveries"
)

// --- Request DTOs ---

// DeliveryItemRequest is one requested line: product and quantity only.
// Prices are resolved server-side at commit.
type DeliveryItemRequest struct {
	ProductID id.ID          `json:"productId" binding:"required"`
	Quantity  types.Quantity `json:"quantity" binding:"required"`
}

// SaveDeliveryRequest is the request body for creating or replacing a delivery.
type SaveDeliveryRequest struct {
	SupplierID id.ID                 `json:"supplierId" binding:"required"`
	Date       types.Date            `json:"date" binding:"required"`
	Items      []DeliveryItemRequest `json:"deliveryItemList"`
}

// ToSnapshot builds a draft snapshot from the request.
func (r *SaveDeliveryRequest) ToSnapshot() deliveries.Snapshot {
	items := make([]deliveries.DraftItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, deliveries.DraftItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return deliveries.Snapshot{
		SupplierID: r.SupplierID,
		Date:       r.Date,
		Items:      items,
	}
}

// --- Response DTOs ---

// DeliveryItemResponse is one committed line with its resolved price.
type DeliveryItemResponse struct {
	LineNo    int            `json:"lineNo"`
	ProductID string         `json:"productId"`
	Quantity  types.Quantity `json:"quantity"`
	UnitPrice types.Money    `json:"unitPrice"`
	LineCost  types.Money    `json:"lineCost"`
}

// DeliveryResponse is the response body for a delivery.
type DeliveryResponse struct {
	ID           string                 `json:"id"`
	SupplierID   string                 `json:"supplierId"`
	SupplierName string                 `json:"supplierName"`
	Date         types.Date             `json:"date"`
	TotalCost    types.Money            `json:"totalCost"`
	Items        []DeliveryItemResponse `json:"deliveryItemList"`
	Version      int                    `json:"version"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// FromDelivery creates response DTO from domain entity.
func FromDelivery(d *deliveries.Delivery) *DeliveryResponse {
	items := make([]DeliveryItemResponse, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, DeliveryItemResponse{
			LineNo:    item.LineNo,
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineCost:  item.LineCost,
		})
	}
	return &DeliveryResponse{
		ID:           d.ID.String(),
		SupplierID:   d.SupplierID.String(),
		SupplierName: d.SupplierName,
		Date:         d.Date,
		TotalCost:    d.TotalCost,
		Items:        items,
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
