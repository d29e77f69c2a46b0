package handlers

import (
	"postavka/internal/domain/pricing"
	"postavka/internal/infrastructure/http/v1/dto"
)

// PriceHTTPHandler is the concrete catalog handler for supplier product prices.
type PriceHTTPHandler = CatalogHandler[
	*pricing.SupplierProductPrice,
	dto.CreatePriceRequest,
	dto.UpdatePriceRequest,
]

// NewPriceHandler wires the generic catalog handler to price DTOs.
func NewPriceHandler(
	base *BaseHandler,
	service *pricing.Service,
) *PriceHTTPHandler {
	config := CatalogHandlerConfig[
		*pricing.SupplierProductPrice,
		dto.CreatePriceRequest,
		dto.UpdatePriceRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "supplier_product_price",

		MapCreateDTO: func(req dto.CreatePriceRequest) *pricing.SupplierProductPrice {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdatePriceRequest, existing *pricing.SupplierProductPrice) *pricing.SupplierProductPrice {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *pricing.SupplierProductPrice) any {
			return dto.FromPrice(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
