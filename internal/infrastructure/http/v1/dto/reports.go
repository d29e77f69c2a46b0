package dto

import (
	"postavka/internal/core/types"
	"postavka/internal/domain/reports"
)

// --- Request DTOs ---

// DeliveryCostReportRequest is the query for the delivery cost report.
type DeliveryCostReportRequest struct {
	SupplierID string `form:"supplierId"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	ProductID  string `form:"productId"`
}

// --- Response DTOs ---

// DeliveryCostRowResponse is one flattened report row.
type DeliveryCostRowResponse struct {
	SupplierName      string         `json:"supplierName"`
	ProductName       string         `json:"productName"`
	UnitOfMeasurement string         `json:"unitOfMeasurement"`
	PriceByUnit       types.Money    `json:"priceByUnit"`
	Quantity          types.Quantity `json:"quantity"`
	TotalCost         types.Money    `json:"totalCost"`
	DeliveryDate      types.Date     `json:"deliveryDate"`
}

// FromDeliveryCostRows maps report rows to the flat array the report
// endpoint returns.
func FromDeliveryCostRows(r *reports.DeliveryCostReport) []DeliveryCostRowResponse {
	rows := make([]DeliveryCostRowResponse, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, DeliveryCostRowResponse{
			SupplierName:      row.SupplierName,
			ProductName:       row.ProductName,
			UnitOfMeasurement: row.UnitOfMeasurement,
			PriceByUnit:       row.PriceByUnit,
			Quantity:          row.Quantity,
			TotalCost:         row.TotalCost,
			DeliveryDate:      row.DeliveryDate,
		})
	}
	return rows
}
