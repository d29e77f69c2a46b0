package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

// priceTable is an in-memory PriceLookup over a fixed set of windows.
type priceTable struct {
	prices []*SupplierProductPrice
}

func (t *priceTable) FindAt(ctx context.Context, supplierID, productID id.ID, date types.Date) (*SupplierProductPrice, error) {
	for _, p := range t.prices {
		if p.SupplierID == supplierID && p.ProductID == productID && p.ValidOn(date) {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("supplier_product_price", "matching query")
}

func fixedPrice(supplierID, productID id.ID, start, end, price string) *SupplierProductPrice {
	return NewSupplierProductPrice(
		supplierID, productID,
		types.MustParseDate(start), types.MustParseDate(end),
		types.MustMoney(price),
	)
}

func TestResolver_AdjacentWindows(t *testing.T) {
	supplierID := id.New()
	productID := id.New()

	table := &priceTable{prices: []*SupplierProductPrice{
		fixedPrice(supplierID, productID, "2024-01-01", "2024-01-31", "10.00"),
		fixedPrice(supplierID, productID, "2024-02-01", "2024-02-28", "12.00"),
	}}
	resolver := NewResolver(table)
	ctx := context.Background()

	tests := []struct {
		date string
		want string
	}{
		{"2024-01-01", "10.00"},
		{"2024-01-15", "10.00"},
		{"2024-01-31", "10.00"},
		{"2024-02-01", "12.00"},
		{"2024-02-28", "12.00"},
	}

	for _, tt := range tests {
		price, err := resolver.Resolve(ctx, supplierID, productID, types.MustParseDate(tt.date))
		require.NoError(t, err, "date %s", tt.date)
		assert.True(t, price.Equal(types.MustMoney(tt.want)), "date %s: want %s, got %s", tt.date, tt.want, price.String())
	}
}

func TestResolver_NoPriceForDate(t *testing.T) {
	supplierID := id.New()
	productID := id.New()

	table := &priceTable{prices: []*SupplierProductPrice{
		fixedPrice(supplierID, productID, "2024-01-01", "2024-01-31", "10.00"),
	}}
	resolver := NewResolver(table)

	_, err := resolver.Resolve(context.Background(), supplierID, productID, types.MustParseDate("2024-03-01"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNoPriceForDate, appErr.Code)
	assert.Equal(t, "2024-03-01", appErr.Details["date"])
}

func TestResolver_DifferentSupplier(t *testing.T) {
	supplierID := id.New()
	productID := id.New()

	table := &priceTable{prices: []*SupplierProductPrice{
		fixedPrice(id.New(), productID, "2024-01-01", "2024-12-31", "10.00"),
	}}
	resolver := NewResolver(table)

	_, err := resolver.Resolve(context.Background(), supplierID, productID, types.MustParseDate("2024-06-01"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNoPriceForDate, appErr.Code)
}
