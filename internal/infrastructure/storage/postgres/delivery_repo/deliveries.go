// Package delivery_repo provides the PostgreSQL implementation of the
// delivery document repository.
package delivery_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/domain"
	"postavka/internal/domain/deliveries"
	"postavka/internal/infrastructure/storage/postgres"
)

const (
	deliveriesTable    = "doc_deliveries"
	deliveryItemsTable = "doc_delivery_items"
	suppliersTable     = "cat_suppliers"
)

// writeCols are the header columns owned by this table. supplier_name is
// join-populated on read and never written.
var writeCols = []string{"id", "version", "created_at", "updated_at", "supplier_id", "date", "total_cost"}

// selectCols read the header joined with the supplier catalog.
var selectCols = []string{
	"d.id", "d.version", "d.created_at", "d.updated_at",
	"d.supplier_id", "s.name AS supplier_name", "d.date", "d.total_cost",
}

// DeliveryRepo implements deliveries.Repository.
type DeliveryRepo struct {
	txm *postgres.TxManager
}

// NewDeliveryRepo creates a new delivery repository.
func NewDeliveryRepo(txm *postgres.TxManager) *DeliveryRepo {
	return &DeliveryRepo{txm: txm}
}

// Builder returns a new squirrel builder.
func (r *DeliveryRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *DeliveryRepo) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(selectCols...).
		From(deliveriesTable + " d").
		LeftJoin(suppliersTable + " s ON s.id = d.supplier_id")
}

// Create inserts a new delivery header. Items are saved via SaveItems.
func (r *DeliveryRepo) Create(ctx context.Context, doc *deliveries.Delivery) error {
	data := postgres.StructToMap(doc)

	filteredData := make(map[string]any, len(writeCols))
	for _, col := range writeCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.Builder().
		Insert(deliveriesTable).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", deliveriesTable, err)
	}

	return nil
}

// Update modifies a delivery header with optimistic locking.
func (r *DeliveryRepo) Update(ctx context.Context, doc *deliveries.Delivery) error {
	data := postgres.StructToMap(doc)

	// Exclude immutable and repo-managed fields
	filteredData := make(map[string]any, len(writeCols))
	for _, col := range writeCols {
		if col == "id" || col == "created_at" {
			continue
		}
		if col == "version" || col == "updated_at" {
			continue // managed by repo
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.Builder().
		Update(deliveriesTable).
		SetMap(filteredData).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": doc.ID}).
		Where(squirrel.Eq{"version": doc.Version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", deliveriesTable, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(deliveriesTable, doc.ID)
	}

	return nil
}

// GetByID retrieves a delivery header by ID (without items).
func (r *DeliveryRepo) GetByID(ctx context.Context, docID id.ID) (*deliveries.Delivery, error) {
	doc := &deliveries.Delivery{}

	q := r.baseSelect().
		Where(squirrel.Eq{"d.id": docID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, doc, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(deliveriesTable, docID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return doc, nil
}

// Delete removes a delivery and its items.
func (r *DeliveryRepo) Delete(ctx context.Context, docID id.ID) error {
	querier := r.txm.GetQuerier(ctx)

	deleteItemsSQL := "DELETE FROM " + deliveryItemsTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteItemsSQL, docID); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}

	q := r.Builder().
		Delete(deliveriesTable).
		Where(squirrel.Eq{"id": docID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", deliveriesTable, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(deliveriesTable, docID.String())
	}

	return nil
}

// GetItems retrieves delivery items ordered by line number.
func (r *DeliveryRepo) GetItems(ctx context.Context, docID id.ID) ([]deliveries.DeliveryItem, error) {
	q := r.Builder().
		Select("line_no", "product_id", "quantity", "unit_price", "line_cost").
		From(deliveryItemsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []deliveries.DeliveryItem
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}

	return items, nil
}

// SaveItems replaces delivery items (delete existing + insert new).
func (r *DeliveryRepo) SaveItems(ctx context.Context, docID id.ID, items []deliveries.DeliveryItem) error {
	querier := r.txm.GetQuerier(ctx)

	deleteSQL := "DELETE FROM " + deliveryItemsTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(deliveryItemsTable).
		Columns("document_id", "line_no", "product_id", "quantity", "unit_price", "line_cost")

	for _, item := range items {
		q = q.Values(docID, item.LineNo, item.ProductID, item.Quantity, item.UnitPrice, item.LineCost)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert items: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}

	return nil
}

// List retrieves deliveries with filtering (headers only).
func (r *DeliveryRepo) List(ctx context.Context, filter deliveries.ListFilter) (domain.ListResult[*deliveries.Delivery], error) {
	result := domain.ListResult[*deliveries.Delivery]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if filter.SupplierID != nil {
		q = q.Where(squirrel.Eq{"d.supplier_id": *filter.SupplierID})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"d.date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"d.date": *filter.DateTo})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.ILike{"s.name": pattern})
	}

	countQ := r.Builder().Select("COUNT(*)").FromSelect(q, "sub")
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy := "d.date DESC, d.id DESC"
	switch filter.OrderBy {
	case "", "-date":
	case "date":
		orderBy = "d.date ASC, d.id ASC"
	default:
		return result, apperror.NewValidation("invalid orderBy").WithDetail("orderBy", filter.OrderBy)
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list: %w", err)
	}

	return result, nil
}
