package deliveries

import (
	"context"
	"fmt"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/tx"
	"postavka/internal/core/types"
	"postavka/internal/domain"
	"postavka/pkg/logger"
)

// PriceResolver yields the unit price valid for (supplier, product) on a date.
type PriceResolver interface {
	Resolve(ctx context.Context, supplierID, productID id.ID, date types.Date) (types.Money, error)
}

// Service commits delivery drafts into persisted deliveries.
//
// Commit is all-or-nothing: every line must resolve to a price before
// anything is written; a single unresolvable line fails the whole commit
// and leaves the prior persisted state unchanged.
type Service struct {
	repo      Repository
	resolver  PriceResolver
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Delivery]
}

// NewService creates a new delivery service.
func NewService(repo Repository, resolver PriceResolver, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		resolver:  resolver,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Delivery](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Delivery] {
	return s.hooks
}

// Commit turns a draft snapshot into a persisted Delivery.
// When existingID is set, the stored delivery is fully replaced (supplier,
// date and items); otherwise a new delivery is created.
func (s *Service) Commit(ctx context.Context, snapshot Snapshot, existingID *id.ID) (*Delivery, error) {
	if id.IsNil(snapshot.SupplierID) {
		return nil, apperror.NewMissingField("supplierId")
	}
	if snapshot.Date.IsZero() {
		return nil, apperror.NewMissingField("date")
	}
	for i, item := range snapshot.Items {
		if id.IsNil(item.ProductID) {
			return nil, apperror.NewValidation("product is required").
				WithDetail("field", "deliveryItemList").
				WithDetail("lineNo", i+1)
		}
		if !item.Quantity.IsPositive() {
			return nil, apperror.NewValidation("quantity must be positive").
				WithDetail("field", "deliveryItemList").
				WithDetail("lineNo", i+1)
		}
	}

	// Resolve every line before touching storage. A zero-item draft is
	// accepted and commits with total cost 0.
	items, err := s.priceItems(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	var doc *Delivery
	if existingID != nil {
		existing, err := s.repo.GetByID(ctx, *existingID)
		if err != nil {
			return nil, err
		}
		doc = existing
		doc.SupplierID = snapshot.SupplierID
		doc.Date = snapshot.Date
	} else {
		doc = NewDelivery(snapshot.SupplierID, snapshot.Date)
	}
	doc.Items = items
	doc.RecalculateTotal()

	if existingID != nil {
		if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
			return nil, err
		}
	} else {
		if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
			return nil, err
		}
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if existingID != nil {
			if err := s.repo.Update(ctx, doc); err != nil {
				return fmt.Errorf("update delivery: %w", err)
			}
		} else {
			if err := s.repo.Create(ctx, doc); err != nil {
				return fmt.Errorf("create delivery: %w", err)
			}
		}

		if err := s.repo.SaveItems(ctx, doc.ID, doc.Items); err != nil {
			return fmt.Errorf("save delivery items: %w", err)
		}

		return nil
	})
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperror.NewDatabase(err)
	}

	if existingID != nil {
		if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
			logger.Warn(ctx, "after-commit hook failed", "error", err)
		}
	} else {
		if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
			logger.Warn(ctx, "after-commit hook failed", "error", err)
		}
	}

	logger.Info(ctx, "delivery committed",
		"id", doc.ID,
		"supplier_id", doc.SupplierID,
		"date", doc.Date.String(),
		"items", len(doc.Items),
		"total_cost", doc.TotalCost.String())

	// Re-read for the denormalized supplier name; the committed document
	// returned to the caller is the authoritative state.
	return s.GetByID(ctx, doc.ID)
}

// priceItems resolves unit prices for all draft lines and computes line costs.
// A single miss fails the batch with UNRESOLVED_PRICE.
func (s *Service) priceItems(ctx context.Context, snapshot Snapshot) ([]DeliveryItem, error) {
	items := make([]DeliveryItem, 0, len(snapshot.Items))
	for i, draftItem := range snapshot.Items {
		price, err := s.resolver.Resolve(ctx, snapshot.SupplierID, draftItem.ProductID, snapshot.Date)
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeNoPriceForDate {
				return nil, apperror.NewUnresolvedPrice(draftItem.ProductID.String(), snapshot.Date.String()).
					WithDetail("lineNo", i+1)
			}
			return nil, err
		}

		items = append(items, DeliveryItem{
			LineNo:    i + 1,
			ProductID: draftItem.ProductID,
			Quantity:  draftItem.Quantity,
			UnitPrice: price,
			LineCost:  price.Mul(draftItem.Quantity.Decimal()),
		})
	}
	return items, nil
}

// GetByID retrieves a delivery with its items.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Delivery, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetItems(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get delivery items: %w", err)
	}
	doc.Items = items

	return doc, nil
}

// List retrieves deliveries with filtering. Items are loaded per document.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Delivery], error) {
	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return result, err
	}

	for _, doc := range result.Items {
		items, err := s.repo.GetItems(ctx, doc.ID)
		if err != nil {
			return result, fmt.Errorf("get delivery items: %w", err)
		}
		doc.Items = items
	}

	return result, nil
}

// Delete removes a delivery and its items.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, docID)
	})
}
