// Package supplier provides the Supplier catalog.
// Suppliers are the counterparties deliveries are purchased from.
package supplier

import (
	"postavka/internal/core/entity"
)

// Supplier represents a goods supplier.
type Supplier struct {
	entity.Catalog

	// Contact is a free-form contact string (phone, email, person)
	Contact string `db:"contact" json:"contact"`
}

// NewSupplier creates a new Supplier with required fields.
func NewSupplier(name, contact string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(name),
		Contact: contact,
	}
}
