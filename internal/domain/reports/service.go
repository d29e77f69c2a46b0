package reports

import (
	"context"
	"fmt"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetDeliveryCost generates the delivery cost report for a supplier over a
// date range. Rows carry the prices stored at commit time; the report never
// re-resolves prices, so later price changes leave past totals untouched.
// An empty result is a valid outcome.
func (s *Service) GetDeliveryCost(ctx context.Context, filter DeliveryCostFilter) (*DeliveryCostReport, error) {
	if id.IsNil(filter.SupplierID) {
		return nil, apperror.NewMissingField("supplierId")
	}
	if filter.FromDate.IsZero() {
		return nil, apperror.NewMissingField("startDate")
	}
	if filter.ToDate.IsZero() {
		return nil, apperror.NewMissingField("endDate")
	}
	if filter.FromDate.After(filter.ToDate) {
		return nil, apperror.NewValidation("startDate must not be after endDate").
			WithDetail("startDate", filter.FromDate.String()).
			WithDetail("endDate", filter.ToDate.String())
	}

	rows, err := s.repo.GetDeliveryCostRows(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get delivery cost rows: %w", err)
	}
	if rows == nil {
		rows = []DeliveryCostRow{}
	}

	grandTotal := types.ZeroMoney()
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.TotalCost)
	}

	return &DeliveryCostReport{
		Rows:       rows,
		TotalRows:  len(rows),
		GrandTotal: grandTotal,
	}, nil
}
