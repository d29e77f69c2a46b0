// Package product provides the Product catalog.
package product

import (
	"context"

	"postavka/internal/core/apperror"
	"postavka/internal/core/entity"
)

// Unit defines the unit of measurement a product is counted in.
type Unit string

const (
	UnitKilogram Unit = "KILOGRAM"
	UnitLiter    Unit = "LITER"
	UnitPiece    Unit = "PIECE"
)

// Product represents a purchasable good.
type Product struct {
	entity.Catalog

	// Description is a free-form note about the product
	Description string `db:"description" json:"description"`

	// UnitOfMeasurement is the enumerated unit the product is counted in
	UnitOfMeasurement Unit `db:"unit_of_measurement" json:"unitOfMeasurement"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(name, description string, unit Unit) *Product {
	return &Product{
		Catalog:           entity.NewCatalog(name),
		Description:       description,
		UnitOfMeasurement: unit,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidUnit(p.UnitOfMeasurement) {
		return apperror.NewValidation("invalid unit of measurement").
			WithDetail("field", "unitOfMeasurement").
			WithDetail("value", string(p.UnitOfMeasurement))
	}

	return nil
}

func isValidUnit(u Unit) bool {
	switch u {
	case UnitKilogram, UnitLiter, UnitPiece:
		return true
	}
	return false
}
