package deliveries

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

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memRepo stores deliveries in memory.
type memRepo struct {
	docs  map[id.ID]*Delivery
	items map[id.ID][]DeliveryItem
}

func newMemRepo() *memRepo {
	return &memRepo{
		docs:  make(map[id.ID]*Delivery),
		items: make(map[id.ID][]DeliveryItem),
	}
}

func (r *memRepo) Create(ctx context.Context, doc *Delivery) error {
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, docID id.ID) (*Delivery, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("doc_deliveries", docID.String())
	}
	cp := *doc
	return &cp, nil
}

func (r *memRepo) Update(ctx context.Context, doc *Delivery) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return apperror.NewNotFound("doc_deliveries", doc.ID.String())
	}
	cp := *doc
	cp.Version++
	r.docs[doc.ID] = &cp
	return nil
}

func (r *memRepo) Delete(ctx context.Context, docID id.ID) error {
	if _, ok := r.docs[docID]; !ok {
		return apperror.NewNotFound("doc_deliveries", docID.String())
	}
	delete(r.docs, docID)
	delete(r.items, docID)
	return nil
}

func (r *memRepo) GetItems(ctx context.Context, docID id.ID) ([]DeliveryItem, error) {
	return r.items[docID], nil
}

func (r *memRepo) SaveItems(ctx context.Context, docID id.ID, items []DeliveryItem) error {
	r.items[docID] = items
	return nil
}

func (r *memRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Delivery], error) {
	result := domain.ListResult[*Delivery]{Limit: filter.Limit, Offset: filter.Offset}
	for _, doc := range r.docs {
		cp := *doc
		result.Items = append(result.Items, &cp)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

// tableResolver resolves prices from a static map keyed by product.
type tableResolver struct {
	prices map[id.ID]types.Money
}

func (r *tableResolver) Resolve(ctx context.Context, supplierID, productID id.ID, date types.Date) (types.Money, error) {
	price, ok := r.prices[productID]
	if !ok {
		return types.ZeroMoney(), apperror.NewNoPriceForDate(supplierID.String(), productID.String(), date.String())
	}
	return price, nil
}

func newTestService(repo *memRepo, resolver *tableResolver) *Service {
	return NewService(repo, resolver, passthroughTx{})
}

func TestCommit_ResolvesPricesAndTotals(t *testing.T) {
	repo := newMemRepo()
	productID := id.New()
	resolver := &tableResolver{prices: map[id.ID]types.Money{
		productID: types.MustMoney("10.00"),
	}}
	svc := newTestService(repo, resolver)

	snapshot := Snapshot{
		SupplierID: id.New(),
		Date:       types.MustParseDate("2024-01-15"),
		Items: []DraftItem{
			{ProductID: productID, Quantity: types.NewQuantityFromFloat64(3)},
		},
	}

	doc, err := svc.Commit(context.Background(), snapshot, nil)
	require.NoError(t, err)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, 1, doc.Items[0].LineNo)
	assert.True(t, doc.Items[0].UnitPrice.Equal(types.MustMoney("10.00")))
	assert.True(t, doc.Items[0].LineCost.Equal(types.MustMoney("30.00")), "got %s", doc.Items[0].LineCost.String())
	assert.True(t, doc.TotalCost.Equal(types.MustMoney("30.00")), "got %s", doc.TotalCost.String())
}

func TestCommit_FractionalQuantity(t *testing.T) {
	repo := newMemRepo()
	productID := id.New()
	resolver := &tableResolver{prices: map[id.ID]types.Money{
		productID: types.MustMoney("12.00"),
	}}
	svc := newTestService(repo, resolver)

	snapshot := Snapshot{
		SupplierID: id.New(),
		Date:       types.MustParseDate("2024-02-10"),
		Items: []DraftItem{
			{ProductID: productID, Quantity: types.NewQuantityFromFloat64(2.5)},
		},
	}

	doc, err := svc.Commit(context.Background(), snapshot, nil)
	require.NoError(t, err)
	assert.True(t, doc.TotalCost.Equal(types.MustMoney("30.00")), "got %s", doc.TotalCost.String())
}

func TestCommit_UnresolvedLineSavesNothing(t *testing.T) {
	repo := newMemRepo()
	priced := id.New()
	unpriced := id.New()
	resolver := &tableResolver{prices: map[id.ID]types.Money{
		priced: types.MustMoney("10.00"),
	}}
	svc := newTestService(repo, resolver)

	snapshot := Snapshot{
		SupplierID: id.New(),
		Date:       types.MustParseDate("2024-01-15"),
		Items: []DraftItem{
			{ProductID: priced, Quantity: types.NewQuantityFromFloat64(1)},
			{ProductID: unpriced, Quantity: types.NewQuantityFromFloat64(2)},
		},
	}

	_, err := svc.Commit(context.Background(), snapshot, nil)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnresolvedPrice, appErr.Code)
	assert.Equal(t, 2, appErr.Details["lineNo"])

	// All-or-nothing: nothing persisted
	assert.Empty(t, repo.docs)
	assert.Empty(t, repo.items)
}

func TestCommit_EmptyItemsTotalsZero(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, &tableResolver{prices: map[id.ID]types.Money{}})

	snapshot := Snapshot{
		SupplierID: id.New(),
		Date:       types.MustParseDate("2024-01-15"),
	}

	doc, err := svc.Commit(context.Background(), snapshot, nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Items)
	assert.True(t, doc.TotalCost.IsZero())
}

func TestCommit_MissingHeaderFields(t *testing.T) {
	svc := newTestService(newMemRepo(), &tableResolver{})

	_, err := svc.Commit(context.Background(), Snapshot{Date: types.MustParseDate("2024-01-15")}, nil)
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	_, err = svc.Commit(context.Background(), Snapshot{SupplierID: id.New()}, nil)
	require.Error(t, err)
	appErr, _ = apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCommit_RecommitReplacesAndReprices(t *testing.T) {
	repo := newMemRepo()
	productID := id.New()
	resolver := &tableResolver{prices: map[id.ID]types.Money{
		productID: types.MustMoney("10.00"),
	}}
	svc := newTestService(repo, resolver)

	first := Snapshot{
		SupplierID: id.New(),
		Date:       types.MustParseDate("2024-01-15"),
		Items: []DraftItem{
			{ProductID: productID, Quantity: types.NewQuantityFromFloat64(1)},
		},
	}
	doc, err := svc.Commit(context.Background(), first, nil)
	require.NoError(t, err)
	docID := doc.ID

	// Price list changed between commits
	resolver.prices[productID] = types.MustMoney("12.00")

	second := Snapshot{
		SupplierID: first.SupplierID,
		Date:       first.Date,
		Items: []DraftItem{
			{ProductID: productID, Quantity: types.NewQuantityFromFloat64(2)},
		},
	}
	updated, err := svc.Commit(context.Background(), second, &docID)
	require.NoError(t, err)

	// Same document identity, fully re-priced content
	assert.Equal(t, docID, updated.ID)
	require.Len(t, updated.Items, 1)
	assert.True(t, updated.Items[0].UnitPrice.Equal(types.MustMoney("12.00")))
	assert.True(t, updated.TotalCost.Equal(types.MustMoney("24.00")), "got %s", updated.TotalCost.String())
}

func TestCommit_DispatchesCreateAndUpdateHooks(t *testing.T) {
	repo := newMemRepo()
	productID := id.New()
	resolver := &tableResolver{prices: map[id.ID]types.Money{
		productID: types.MustMoney("10.00"),
	}}
	svc := newTestService(repo, resolver)

	var events []domain.HookEvent
	record := func(event domain.HookEvent) domain.Hook[*Delivery] {
		return func(ctx context.Context, doc *Delivery) error {
			events = append(events, event)
			return nil
		}
	}
	svc.Hooks().OnBeforeCreate(record(domain.BeforeCreate))
	svc.Hooks().OnAfterCreate(record(domain.AfterCreate))
	svc.Hooks().OnBeforeUpdate(record(domain.BeforeUpdate))
	svc.Hooks().OnAfterUpdate(record(domain.AfterUpdate))

	snapshot := Snapshot{
		SupplierID: id.New(),
		Date:       types.MustParseDate("2024-01-15"),
		Items: []DraftItem{
			{ProductID: productID, Quantity: types.NewQuantityFromFloat64(1)},
		},
	}

	doc, err := svc.Commit(context.Background(), snapshot, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.HookEvent{domain.BeforeCreate, domain.AfterCreate}, events)

	events = nil
	docID := doc.ID
	_, err = svc.Commit(context.Background(), snapshot, &docID)
	require.NoError(t, err)
	assert.Equal(t, []domain.HookEvent{domain.BeforeUpdate, domain.AfterUpdate}, events)
}

func TestDelete_RemovesDocument(t *testing.T) {
	repo := newMemRepo()
	productID := id.New()
	resolver := &tableResolver{prices: map[id.ID]types.Money{
		productID: types.MustMoney("5.00"),
	}}
	svc := newTestService(repo, resolver)

	doc, err := svc.Commit(context.Background(), Snapshot{
		SupplierID: id.New(),
		Date:       types.MustParseDate("2024-03-01"),
		Items: []DraftItem{
			{ProductID: productID, Quantity: types.NewQuantityFromFloat64(1)},
		},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), doc.ID))

	_, err = svc.GetByID(context.Background(), doc.ID)
	assert.True(t, apperror.IsNotFound(err))
}
