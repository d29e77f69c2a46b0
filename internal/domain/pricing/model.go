// Package pricing provides supplier product prices with validity windows
// and point-in-time price resolution.
package pricing

import (
	"context"

	"postavka/internal/core/apperror"
	"postavka/internal/core/entity"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

// SupplierProductPrice is a unit price for a (supplier, product) pair,
// valid inside the inclusive [StartDate, EndDate] window.
// Windows for one pair never overlap: at most one price can be valid
// on any given date.
type SupplierProductPrice struct {
	entity.BaseCatalog

	SupplierID id.ID `db:"supplier_id" json:"supplierId"`
	ProductID  id.ID `db:"product_id" json:"productId"`

	StartDate types.Date `db:"start_date" json:"startDate"`
	EndDate   types.Date `db:"end_date" json:"endDate"`

	// Price is the unit price, non-negative
	Price types.Money `db:"price" json:"price"`
}

// NewSupplierProductPrice creates a price record with generated ID.
func NewSupplierProductPrice(supplierID, productID id.ID, start, end types.Date, price types.Money) *SupplierProductPrice {
	return &SupplierProductPrice{
		BaseCatalog: entity.NewBaseCatalog(),
		SupplierID:  supplierID,
		ProductID:   productID,
		StartDate:   start,
		EndDate:     end,
		Price:       price,
	}
}

// Validate implements entity.Validatable interface.
func (p *SupplierProductPrice) Validate(ctx context.Context) error {
	if id.IsNil(p.SupplierID) {
		return apperror.NewMissingField("supplierId")
	}
	if id.IsNil(p.ProductID) {
		return apperror.NewMissingField("productId")
	}
	if p.StartDate.IsZero() {
		return apperror.NewMissingField("startDate")
	}
	if p.EndDate.IsZero() {
		return apperror.NewMissingField("endDate")
	}
	if p.EndDate.Before(p.StartDate) {
		return apperror.NewValidation("endDate must not be before startDate").
			WithDetail("startDate", p.StartDate.String()).
			WithDetail("endDate", p.EndDate.String())
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price").
			WithDetail("value", p.Price.String())
	}
	return nil
}

// ValidOn reports whether the price window contains date, boundaries included.
func (p *SupplierProductPrice) ValidOn(date types.Date) bool {
	return date.Within(p.StartDate, p.EndDate)
}
