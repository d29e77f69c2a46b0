package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
	"postavka/internal/domain"
	"postavka/internal/domain/catalogs/supplier"
	"postavka/internal/domain/deliveries"
	"postavka/internal/domain/reports"
)

// noTx runs the function without a real transaction.
type noTx struct{}

func (noTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// nopResolver satisfies the price resolver for handlers that never commit.
type nopResolver struct{}

func (nopResolver) Resolve(ctx context.Context, supplierID, productID id.ID, date types.Date) (types.Money, error) {
	return types.ZeroMoney(), nil
}

// reportRowsRepo returns canned report rows.
type reportRowsRepo struct {
	rows []reports.DeliveryCostRow
}

func (r *reportRowsRepo) GetDeliveryCostRows(ctx context.Context, filter reports.DeliveryCostFilter) ([]reports.DeliveryCostRow, error) {
	return r.rows, nil
}

// deliveryListRepo serves a fixed delivery list.
type deliveryListRepo struct {
	docs  []*deliveries.Delivery
	items map[id.ID][]deliveries.DeliveryItem
}

func (r *deliveryListRepo) Create(ctx context.Context, doc *deliveries.Delivery) error { return nil }
func (r *deliveryListRepo) Update(ctx context.Context, doc *deliveries.Delivery) error { return nil }
func (r *deliveryListRepo) Delete(ctx context.Context, docID id.ID) error              { return nil }

func (r *deliveryListRepo) GetByID(ctx context.Context, docID id.ID) (*deliveries.Delivery, error) {
	for _, doc := range r.docs {
		if doc.ID == docID {
			return doc, nil
		}
	}
	return nil, apperror.NewNotFound("doc_deliveries", docID.String())
}

func (r *deliveryListRepo) GetItems(ctx context.Context, docID id.ID) ([]deliveries.DeliveryItem, error) {
	return r.items[docID], nil
}

func (r *deliveryListRepo) SaveItems(ctx context.Context, docID id.ID, items []deliveries.DeliveryItem) error {
	return nil
}

func (r *deliveryListRepo) List(ctx context.Context, filter deliveries.ListFilter) (domain.ListResult[*deliveries.Delivery], error) {
	return domain.ListResult[*deliveries.Delivery]{
		Items:      r.docs,
		TotalCount: int64(len(r.docs)),
	}, nil
}

// supplierListRepo serves a fixed supplier list.
type supplierListRepo struct {
	items []*supplier.Supplier
}

func (r *supplierListRepo) Create(ctx context.Context, s *supplier.Supplier) error { return nil }
func (r *supplierListRepo) Update(ctx context.Context, s *supplier.Supplier) error { return nil }
func (r *supplierListRepo) Delete(ctx context.Context, entityID id.ID) error       { return nil }

func (r *supplierListRepo) GetByID(ctx context.Context, entityID id.ID) (*supplier.Supplier, error) {
	for _, s := range r.items {
		if s.ID == entityID {
			return s, nil
		}
	}
	return nil, apperror.NewNotFound("cat_suppliers", entityID.String())
}

func (r *supplierListRepo) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	return true, nil
}

func (r *supplierListRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*supplier.Supplier], error) {
	return domain.ListResult[*supplier.Supplier]{
		Items:      r.items,
		TotalCount: int64(len(r.items)),
	}, nil
}

func TestGetDeliveryCost_ReturnsRowArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &reportRowsRepo{rows: []reports.DeliveryCostRow{{
		SupplierName:      "S1",
		ProductName:       "P1",
		UnitOfMeasurement: "KG",
		PriceByUnit:       types.MustMoney("10.00"),
		Quantity:          types.NewQuantityFromFloat64(3),
		TotalCost:         types.MustMoney("30.00"),
		DeliveryDate:      types.MustParseDate("2024-01-15"),
	}}}
	handler := NewReportsHandler(NewBaseHandler(), reports.NewService(repo))

	engine := gin.New()
	engine.GET("/api/v1/reports", handler.GetDeliveryCost)

	url := "/api/v1/reports?supplierId=" + id.New().String() +
		"&startDate=2024-01-01&endDate=2024-12-31"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows),
		"body must be a flat array, got: %s", w.Body.String())
	require.Len(t, rows, 1)
	assert.Equal(t, "S1", rows[0]["supplierName"])
	assert.Equal(t, "P1", rows[0]["productName"])

	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))
	grand := types.MustMoney(w.Header().Get("X-Grand-Total"))
	assert.True(t, grand.Equal(types.MustMoney("30.00")), "got %s", grand.String())
}

func TestDeliveryList_ReturnsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	doc := deliveries.NewDelivery(id.New(), types.MustParseDate("2024-01-15"))
	doc.SupplierName = "S1"
	repo := &deliveryListRepo{
		docs: []*deliveries.Delivery{doc},
		items: map[id.ID][]deliveries.DeliveryItem{doc.ID: {{
			LineNo:    1,
			ProductID: id.New(),
			Quantity:  types.NewQuantityFromFloat64(3),
			UnitPrice: types.MustMoney("10.00"),
			LineCost:  types.MustMoney("30.00"),
		}}},
	}
	svc := deliveries.NewService(repo, nopResolver{}, noTx{})
	handler := NewDeliveryHandler(NewBaseHandler(), svc)

	engine := gin.New()
	engine.GET("/api/v1/deliveries", handler.List)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/deliveries", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs),
		"body must be a flat array, got: %s", w.Body.String())
	require.Len(t, docs, 1)
	assert.Equal(t, "S1", docs[0]["supplierName"])

	items, ok := docs[0]["deliveryItemList"].([]any)
	require.True(t, ok, "deliveryItemList must be an array")
	assert.Len(t, items, 1)

	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))
}

func TestSupplierList_ReturnsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &supplierListRepo{items: []*supplier.Supplier{
		supplier.NewSupplier("Acme", "sales@acme.example"),
	}}
	svc := supplier.NewService(repo, noTx{})
	handler := NewSupplierHandler(NewBaseHandler(), svc)

	engine := gin.New()
	engine.GET("/api/v1/suppliers", handler.List)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/suppliers", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items),
		"body must be a flat array, got: %s", w.Body.String())
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0]["name"])
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))
}
