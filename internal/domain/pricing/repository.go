package pricing

import (
	"context"

	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain"
)

// Repository defines the interface for price persistence.
type Repository interface {
	domain.CatalogRepository[*SupplierProductPrice]

	// FindAt retrieves the single price for (supplier, product) whose
	// validity window contains date. Not-found means no price applies.
	FindAt(ctx context.Context, supplierID, productID id.ID, date types.Date) (*SupplierProductPrice, error)

	// ExistsOverlapping reports whether any other price for the same
	// (supplier, product) pair intersects [start, end]. excludeID skips
	// the record itself when checking an update.
	ExistsOverlapping(ctx context.Context, supplierID, productID id.ID, start, end types.Date, excludeID id.ID) (bool, error)
}
