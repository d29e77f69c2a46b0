// Package report_repo provides the PostgreSQL implementation for report queries.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"postavka/internal/domain/reports"
	"postavka/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetDeliveryCostRows flattens committed deliveries into per-line report rows.
// Costs come from the stored line prices, so the report reflects what was
// paid at delivery time, not the current price list.
func (r *ReportRepo) GetDeliveryCostRows(ctx context.Context, filter reports.DeliveryCostFilter) ([]reports.DeliveryCostRow, error) {
	q := r.builder.
		Select(
			"s.name AS supplier_name",
			"p.name AS product_name",
			"p.unit_of_measurement",
			"i.unit_price AS price_by_unit",
			"i.quantity",
			"i.line_cost AS total_cost",
			"d.date AS delivery_date",
		).
		From("doc_deliveries d").
		Join("doc_delivery_items i ON i.document_id = d.id").
		Join("cat_suppliers s ON s.id = d.supplier_id").
		Join("cat_products p ON p.id = i.product_id").
		Where(squirrel.Eq{"d.supplier_id": filter.SupplierID}).
		Where(squirrel.GtOrEq{"d.date": filter.FromDate}).
		Where(squirrel.LtOrEq{"d.date": filter.ToDate}).
		OrderBy("d.date", "d.id", "i.line_no")

	// Product filter applies per line: a mixed delivery contributes
	// only its matching lines.
	if filter.ProductID != nil {
		q = q.Where(squirrel.Eq{"i.product_id": *filter.ProductID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.DeliveryCostRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("delivery cost rows: %w", err)
	}

	return rows, nil
}
