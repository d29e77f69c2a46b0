package dto

import (
	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain/pricing"
)

// --- Request DTOs ---

// CreatePriceRequest is the request body for creating a supplier product price.
type CreatePriceRequest struct {
	SupplierID id.ID       `json:"supplierId" binding:"required"`
	ProductID  id.ID       `json:"productId" binding:"required"`
	StartDate  types.Date  `json:"startDate" binding:"required"`
	EndDate    types.Date  `json:"endDate" binding:"required"`
	Price      types.Money `json:"price"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePriceRequest) ToEntity() *pricing.SupplierProductPrice {
	return pricing.NewSupplierProductPrice(r.SupplierID, r.ProductID, r.StartDate, r.EndDate, r.Price)
}

// UpdatePriceRequest is the request body for updating a supplier product price.
// All fields are optional; absent fields keep their current value.
type UpdatePriceRequest struct {
	SupplierID *id.ID       `json:"supplierId,omitempty"`
	ProductID  *id.ID       `json:"productId,omitempty"`
	StartDate  *types.Date  `json:"startDate,omitempty"`
	EndDate    *types.Date  `json:"endDate,omitempty"`
	Price      *types.Money `json:"price,omitempty"`
	Version    *int         `json:"version,omitempty"`
}

// ApplyTo applies the fields present in the request to an existing entity.
func (r *UpdatePriceRequest) ApplyTo(p *pricing.SupplierProductPrice) {
	if r.SupplierID != nil {
		p.SupplierID = *r.SupplierID
	}
	if r.ProductID != nil {
		p.ProductID = *r.ProductID
	}
	if r.StartDate != nil {
		p.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = *r.EndDate
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Version != nil {
		p.Version = *r.Version
	}
}

// --- Response DTOs ---

// PriceResponse is the response body for a supplier product price.
type PriceResponse struct {
	ID         string      `json:"id"`
	SupplierID string      `json:"supplierId"`
	ProductID  string      `json:"productId"`
	StartDate  types.Date  `json:"startDate"`
	EndDate    types.Date  `json:"endDate"`
	Price      types.Money `json:"price"`
	Version    int         `json:"version"`
}

// FromPrice creates response DTO from domain entity.
func FromPrice(p *pricing.SupplierProductPrice) *PriceResponse {
	return &PriceResponse{
		ID:         p.ID.String(),
		SupplierID: p.SupplierID.String(),
		ProductID:  p.ProductID.String(),
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Price:      p.Price,
		Version:    p.Version,
	}
}
