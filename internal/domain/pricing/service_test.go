package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain"
)

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memPriceRepo keeps prices in memory and answers overlap queries the way
// the SQL implementation does: two inclusive windows intersect when each
// starts no later than the other ends.
type memPriceRepo struct {
	prices map[id.ID]*SupplierProductPrice
}

func newMemPriceRepo() *memPriceRepo {
	return &memPriceRepo{prices: make(map[id.ID]*SupplierProductPrice)}
}

func (r *memPriceRepo) Create(ctx context.Context, p *SupplierProductPrice) error {
	r.prices[p.ID] = p
	return nil
}

func (r *memPriceRepo) GetByID(ctx context.Context, priceID id.ID) (*SupplierProductPrice, error) {
	p, ok := r.prices[priceID]
	if !ok {
		return nil, apperror.NewNotFound("supplier_product_price", priceID.String())
	}
	return p, nil
}

func (r *memPriceRepo) Update(ctx context.Context, p *SupplierProductPrice) error {
	if _, ok := r.prices[p.ID]; !ok {
		return apperror.NewNotFound("supplier_product_price", p.ID.String())
	}
	r.prices[p.ID] = p
	return nil
}

func (r *memPriceRepo) Delete(ctx context.Context, priceID id.ID) error {
	if _, ok := r.prices[priceID]; !ok {
		return apperror.NewNotFound("supplier_product_price", priceID.String())
	}
	delete(r.prices, priceID)
	return nil
}

func (r *memPriceRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*SupplierProductPrice], error) {
	result := domain.ListResult[*SupplierProductPrice]{Limit: filter.Limit, Offset: filter.Offset}
	for _, p := range r.prices {
		result.Items = append(result.Items, p)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (r *memPriceRepo) Exists(ctx context.Context, priceID id.ID) (bool, error) {
	_, ok := r.prices[priceID]
	return ok, nil
}

func (r *memPriceRepo) FindAt(ctx context.Context, supplierID, productID id.ID, date types.Date) (*SupplierProductPrice, error) {
	for _, p := range r.prices {
		if p.SupplierID == supplierID && p.ProductID == productID && p.ValidOn(date) {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("supplier_product_price", "matching query")
}

func (r *memPriceRepo) ExistsOverlapping(ctx context.Context, supplierID, productID id.ID, start, end types.Date, excludeID id.ID) (bool, error) {
	for _, p := range r.prices {
		if p.ID == excludeID {
			continue
		}
		if p.SupplierID != supplierID || p.ProductID != productID {
			continue
		}
		if !p.StartDate.After(end) && !p.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func newPrice(supplierID, productID id.ID, start, end, price string) *SupplierProductPrice {
	return NewSupplierProductPrice(
		supplierID, productID,
		types.MustParseDate(start), types.MustParseDate(end),
		types.MustMoney(price),
	)
}

func TestService_Create_RejectsOverlap(t *testing.T) {
	repo := newMemPriceRepo()
	svc := NewService(repo, passthroughTx{})
	ctx := context.Background()

	supplierID := id.New()
	productID := id.New()

	require.NoError(t, svc.Create(ctx, newPrice(supplierID, productID, "2024-01-01", "2024-01-31", "10.00")))

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"identical window", "2024-01-01", "2024-01-31"},
		{"contained window", "2024-01-10", "2024-01-20"},
		{"overlaps start", "2023-12-15", "2024-01-01"},
		{"overlaps end", "2024-01-31", "2024-02-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(ctx, newPrice(supplierID, productID, tt.start, tt.end, "11.00"))
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodePriceOverlap, appErr.Code)
		})
	}
}

func TestService_Create_AdjacentWindowsAllowed(t *testing.T) {
	repo := newMemPriceRepo()
	svc := NewService(repo, passthroughTx{})
	ctx := context.Background()

	supplierID := id.New()
	productID := id.New()

	require.NoError(t, svc.Create(ctx, newPrice(supplierID, productID, "2024-01-01", "2024-01-31", "10.00")))
	// Next window starts the day after the previous one ends
	require.NoError(t, svc.Create(ctx, newPrice(supplierID, productID, "2024-02-01", "2024-02-28", "12.00")))
}

func TestService_Create_OtherPairUnaffected(t *testing.T) {
	repo := newMemPriceRepo()
	svc := NewService(repo, passthroughTx{})
	ctx := context.Background()

	supplierID := id.New()
	require.NoError(t, svc.Create(ctx, newPrice(supplierID, id.New(), "2024-01-01", "2024-01-31", "10.00")))
	// Same window for a different product is fine
	require.NoError(t, svc.Create(ctx, newPrice(supplierID, id.New(), "2024-01-01", "2024-01-31", "20.00")))
}

func TestService_Update_ExcludesSelfFromOverlapCheck(t *testing.T) {
	repo := newMemPriceRepo()
	svc := NewService(repo, passthroughTx{})
	ctx := context.Background()

	price := newPrice(id.New(), id.New(), "2024-01-01", "2024-01-31", "10.00")
	require.NoError(t, svc.Create(ctx, price))

	// Changing only the amount keeps the same window; the record must not
	// collide with itself.
	price.Price = types.MustMoney("11.00")
	require.NoError(t, svc.Update(ctx, price))
}

func TestService_Create_InvalidWindowRejected(t *testing.T) {
	svc := NewService(newMemPriceRepo(), passthroughTx{})

	err := svc.Create(context.Background(), newPrice(id.New(), id.New(), "2024-02-01", "2024-01-01", "10.00"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
