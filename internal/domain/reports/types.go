// Package reports provides delivery cost report generation.
package reports

import (
	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

// DeliveryCostFilter defines the filter for the delivery cost report.
type DeliveryCostFilter struct {
	// SupplierID is required
	SupplierID id.ID

	// Period (required, inclusive on both ends)
	FromDate types.Date
	ToDate   types.Date

	// ProductID narrows rows to one product; filtering happens per line,
	// a mixed delivery contributes only its matching lines
	ProductID *id.ID
}

// DeliveryCostRow is a flattened per-line-item projection of a delivery.
// Costs reflect the prices stored at commit time, not current prices.
type DeliveryCostRow struct {
	SupplierName      string         `db:"supplier_name" json:"supplierName"`
	ProductName       string         `db:"product_name" json:"productName"`
	UnitOfMeasurement string         `db:"unit_of_measurement" json:"unitOfMeasurement"`
	PriceByUnit       types.Money    `db:"price_by_unit" json:"priceByUnit"`
	Quantity          types.Quantity `db:"quantity" json:"quantity"`
	TotalCost         types.Money    `db:"total_cost" json:"totalCost"`
	DeliveryDate      types.Date     `db:"delivery_date" json:"deliveryDate"`
}

// DeliveryCostReport is the full report result.
type DeliveryCostReport struct {
	Rows      []DeliveryCostRow `json:"rows"`
	TotalRows int               `json:"totalRows"`

	// GrandTotal is the sum of row totals
	GrandTotal types.Money `json:"grandTotal"`
}
