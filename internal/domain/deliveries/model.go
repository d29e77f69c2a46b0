// Package deliveries provides the Delivery document: a purchase event
// composed of priced line items, committed from a mutable draft.
package deliveries

import (
	"context"

	"postavka/internal/core/apperror"
	"postavka/internal/core/entity"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

// Delivery is a committed purchase document. Line prices are resolved at
// commit time and stored; they change only through an explicit
// edit-and-recommit cycle, which re-resolves every line.
type Delivery struct {
	entity.BaseDocument

	// Supplier reference
	SupplierID id.ID `db:"supplier_id" json:"supplierId"`

	// SupplierName is denormalized at read time via join, never stored
	SupplierName string `db:"supplier_name" json:"supplierName"`

	// Date the delivery took place; prices are resolved against it
	Date types.Date `db:"date" json:"date"`

	// TotalCost is the sum of line costs (derived)
	TotalCost types.Money `db:"total_cost" json:"totalCost"`

	// Table part: delivered goods, ordered by line number
	Items []DeliveryItem `db:"-" json:"deliveryItemList"`
}

// DeliveryItem is one product+quantity entry within a Delivery, carrying
// its resolved price and cost.
type DeliveryItem struct {
	LineNo    int            `db:"line_no" json:"lineNo"`
	ProductID id.ID          `db:"product_id" json:"productId"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`

	// UnitPrice is assigned by the price resolver at commit, not user-entered
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// LineCost = Quantity × UnitPrice
	LineCost types.Money `db:"line_cost" json:"lineCost"`
}

// NewDelivery creates an empty delivery document.
func NewDelivery(supplierID id.ID, date types.Date) *Delivery {
	return &Delivery{
		BaseDocument: entity.NewBaseDocument(),
		SupplierID:   supplierID,
		Date:         date,
		TotalCost:    types.ZeroMoney(),
		Items:        make([]DeliveryItem, 0),
	}
}

// Validate implements entity.Validatable.
func (d *Delivery) Validate(ctx context.Context) error {
	if id.IsNil(d.SupplierID) {
		return apperror.NewMissingField("supplierId")
	}
	if d.Date.IsZero() {
		return apperror.NewMissingField("date")
	}

	for i, item := range d.Items {
		if id.IsNil(item.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "deliveryItemList").
				WithDetail("lineNo", i+1)
		}
		if !item.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "deliveryItemList").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// RecalculateTotal updates the document total from line costs.
// An empty item list totals to zero.
func (d *Delivery) RecalculateTotal() {
	total := types.ZeroMoney()
	for _, item := range d.Items {
		total = total.Add(item.LineCost)
	}
	d.TotalCost = total
}
