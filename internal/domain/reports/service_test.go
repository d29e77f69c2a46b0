package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

type stubRepo struct {
	rows       []DeliveryCostRow
	lastFilter DeliveryCostFilter
}

func (r *stubRepo) GetDeliveryCostRows(ctx context.Context, filter DeliveryCostFilter) ([]DeliveryCostRow, error) {
	r.lastFilter = filter
	return r.rows, nil
}

func costRow(total string, date string) DeliveryCostRow {
	return DeliveryCostRow{
		SupplierName:      "Acme Foods",
		ProductName:       "Flour",
		UnitOfMeasurement: "KILOGRAM",
		PriceByUnit:       types.MustMoney("10.00"),
		Quantity:          types.NewQuantityFromFloat64(1),
		TotalCost:         types.MustMoney(total),
		DeliveryDate:      types.MustParseDate(date),
	}
}

func validFilter() DeliveryCostFilter {
	return DeliveryCostFilter{
		SupplierID: id.New(),
		FromDate:   types.MustParseDate("2024-01-01"),
		ToDate:     types.MustParseDate("2024-01-31"),
	}
}

func TestGetDeliveryCost_GrandTotal(t *testing.T) {
	repo := &stubRepo{rows: []DeliveryCostRow{
		costRow("30.00", "2024-01-10"),
		costRow("12.50", "2024-01-20"),
	}}
	svc := NewService(repo)

	report, err := svc.GetDeliveryCost(context.Background(), validFilter())
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalRows)
	assert.True(t, report.GrandTotal.Equal(types.MustMoney("42.50")), "got %s", report.GrandTotal.String())
}

func TestGetDeliveryCost_EmptyResult(t *testing.T) {
	svc := NewService(&stubRepo{})

	report, err := svc.GetDeliveryCost(context.Background(), validFilter())
	require.NoError(t, err)

	assert.NotNil(t, report.Rows)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 0, report.TotalRows)
	assert.True(t, report.GrandTotal.IsZero())
}

func TestGetDeliveryCost_FilterValidation(t *testing.T) {
	svc := NewService(&stubRepo{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*DeliveryCostFilter)
	}{
		{"missing supplier", func(f *DeliveryCostFilter) { f.SupplierID = id.Nil() }},
		{"missing start date", func(f *DeliveryCostFilter) { f.FromDate = types.Date{} }},
		{"missing end date", func(f *DeliveryCostFilter) { f.ToDate = types.Date{} }},
		{"inverted range", func(f *DeliveryCostFilter) {
			f.FromDate = types.MustParseDate("2024-02-01")
			f.ToDate = types.MustParseDate("2024-01-01")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := validFilter()
			tt.mutate(&filter)

			_, err := svc.GetDeliveryCost(ctx, filter)
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
		})
	}
}

func TestGetDeliveryCost_PassesProductFilter(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	filter := validFilter()
	productID := id.New()
	filter.ProductID = &productID

	_, err := svc.GetDeliveryCost(context.Background(), filter)
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.ProductID)
	assert.Equal(t, productID, *repo.lastFilter.ProductID)
}
