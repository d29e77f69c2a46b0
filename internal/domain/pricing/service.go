package pricing

import (
	"context"

	"postavka/internal/core/apperror"
	"postavka/internal/core/tx"
	"postavka/internal/domain"
)

// Service provides business logic for supplier product prices.
// Uses composition with domain.CatalogService for common CRUD operations.
// The non-overlap invariant is enforced in before-create/before-update hooks.
type Service struct {
	*domain.CatalogService[*SupplierProductPrice]
	repo Repository
}

// NewService creates a new price service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*SupplierProductPrice]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "supplier_product_price",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkOverlap)
	base.Hooks().OnBeforeUpdate(svc.checkOverlap)

	return svc
}

// checkOverlap rejects a price whose window intersects an existing window
// for the same (supplier, product) pair.
func (s *Service) checkOverlap(ctx context.Context, price *SupplierProductPrice) error {
	overlaps, err := s.repo.ExistsOverlapping(ctx, price.SupplierID, price.ProductID, price.StartDate, price.EndDate, price.ID)
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewDatabase(err)
	}
	if overlaps {
		return apperror.NewPriceOverlap(price.SupplierID.String(), price.ProductID.String())
	}
	return nil
}
