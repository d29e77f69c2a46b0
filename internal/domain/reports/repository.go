package reports

import (
	"context"
)

// Repository defines report data access interface.
type Repository interface {
	// GetDeliveryCostRows returns flattened delivery lines matching the
	// filter, in delivery retrieval order, lines in insertion order.
	GetDeliveryCostRows(ctx context.Context, filter DeliveryCostFilter) ([]DeliveryCostRow, error)
}
