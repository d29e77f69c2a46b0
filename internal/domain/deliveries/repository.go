package deliveries

import (
	"context"

	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain"
)

// Repository defines operations for delivery documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Delivery) error
	GetByID(ctx context.Context, docID id.ID) (*Delivery, error)
	Update(ctx context.Context, doc *Delivery) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetItems(ctx context.Context, docID id.ID) ([]DeliveryItem, error)
	SaveItems(ctx context.Context, docID id.ID, items []DeliveryItem) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Delivery], error)
}

// ListFilter for filtering deliveries.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	SupplierID *id.ID
	DateFrom   *types.Date
	DateTo     *types.Date
}
