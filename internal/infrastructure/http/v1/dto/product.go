package dto

import (
	"postavka/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Name              string       `json:"name" binding:"required"`
	Description       string       `json:"description"`
	UnitOfMeasurement product.Unit `json:"unitOfMeasurement" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	return product.NewProduct(r.Name, r.Description, r.UnitOfMeasurement)
}

// UpdateProductRequest is the request body for updating a product.
// All fields are optional; absent fields keep their current value.
type UpdateProductRequest struct {
	Name              *string       `json:"name,omitempty"`
	Description       *string       `json:"description,omitempty"`
	UnitOfMeasurement *product.Unit `json:"unitOfMeasurement,omitempty"`
	Version           *int          `json:"version,omitempty"`
}

// ApplyTo applies the fields present in the request to an existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.UnitOfMeasurement != nil {
		p.UnitOfMeasurement = *r.UnitOfMeasurement
	}
	if r.Version != nil {
		p.Version = *r.Version
	}
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	UnitOfMeasurement product.Unit `json:"unitOfMeasurement"`
	Version           int          `json:"version"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		Description:       p.Description,
		UnitOfMeasurement: p.UnitOfMeasurement,
		Version:           p.Version,
	}
}
