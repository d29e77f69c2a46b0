// Package price_repo provides the PostgreSQL implementation of the
// supplier product price repository.
package price_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain/pricing"
	"postavka/internal/infrastructure/storage/postgres"
	"postavka/internal/infrastructure/storage/postgres/catalog_repo"
)

const priceTable = "cat_supplier_product_prices"

// PriceRepo implements pricing.Repository.
type PriceRepo struct {
	*catalog_repo.BaseCatalogRepo[*pricing.SupplierProductPrice]

	txm *postgres.TxManager
}

// NewPriceRepo creates a new price repository.
// Prices have no name column: search is disabled and listing defaults to
// validity window order.
func NewPriceRepo(txm *postgres.TxManager) *PriceRepo {
	return &PriceRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo[*pricing.SupplierProductPrice](
			txm,
			priceTable,
			postgres.ExtractDBColumns[pricing.SupplierProductPrice](),
			func() *pricing.SupplierProductPrice { return &pricing.SupplierProductPrice{} },
		).WithDefaultOrder("start_date ASC"),
		txm: txm,
	}
}

// FindAt retrieves the price whose inclusive validity window contains date.
func (r *PriceRepo) FindAt(ctx context.Context, supplierID, productID id.ID, date types.Date) (*pricing.SupplierProductPrice, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[pricing.SupplierProductPrice]()...).
		From(priceTable).
		Where(squirrel.Eq{"supplier_id": supplierID}).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		Limit(1)

	return r.FindOne(ctx, q)
}

// ExistsOverlapping reports whether another price window for the same
// (supplier, product) pair intersects [start, end].
func (r *PriceRepo) ExistsOverlapping(ctx context.Context, supplierID, productID id.ID, start, end types.Date, excludeID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(priceTable).
		Where(squirrel.Eq{"supplier_id": supplierID}).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		Limit(1)

	if !id.IsNil(excludeID) {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists overlapping: %w", err)
	}

	return true, nil
}
