package pricing

import (
	"context"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

// PriceLookup is the read side of the price table used by the resolver.
type PriceLookup interface {
	FindAt(ctx context.Context, supplierID, productID id.ID, date types.Date) (*SupplierProductPrice, error)
}

// Resolver determines the applicable unit price for a product from a
// supplier at a given date. Because validity windows never overlap, at
// most one price can match; a miss is reported as NO_PRICE_FOR_DATE.
//
// The resolver holds no state beyond the price table reference and does
// not cache between calls: the price table may change at any time.
type Resolver struct {
	prices PriceLookup
}

// NewResolver creates a new price resolver.
func NewResolver(prices PriceLookup) *Resolver {
	return &Resolver{prices: prices}
}

// Resolve returns the unit price valid for (supplier, product) on date.
// Window boundaries are inclusive on both ends.
func (r *Resolver) Resolve(ctx context.Context, supplierID, productID id.ID, date types.Date) (types.Money, error) {
	price, err := r.prices.FindAt(ctx, supplierID, productID, date)
	if err != nil {
		if apperror.IsNotFound(err) {
			return types.ZeroMoney(), apperror.NewNoPriceForDate(supplierID.String(), productID.String(), date.String())
		}
		return types.ZeroMoney(), err
	}
	return price.Price, nil
}
