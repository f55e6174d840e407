package http

import (
	"net/http"

	"github.com/wingscafe/inventory/internal/service"
)

const (
	statusInStock    = "In Stock"
	statusOutOfStock = "Out of Stock"
)

type dashboardHandler struct {
	svc        *Service
	catalogSvc service.CatalogService
	stockSvc   service.StockService
	sales      *service.SalesAggregator
}

func newDashboardHandler(
	svc *Service,
	catalogSvc service.CatalogService,
	stockSvc service.StockService,
	sales *service.SalesAggregator,
) *dashboardHandler {
	return &dashboardHandler{
		svc:        svc,
		catalogSvc: catalogSvc,
		stockSvc:   stockSvc,
		sales:      sales,
	}
}

func (h *dashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogSvc.ListAllProducts(r.Context())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	levels := make([]StockLevelResponse, 0, len(products))
	for _, product := range products {
		status := statusOutOfStock
		if product.InStock() {
			status = statusInStock
		}
		levels = append(levels, StockLevelResponse{
			ID:       product.ID,
			Name:     product.Name,
			Quantity: product.Quantity,
			Price:    product.Price,
			Status:   status,
		})
	}

	h.svc.respond(w, r, http.StatusOK, DashboardResponse{
		StockLevels:       levels,
		TotalSales:        h.sales.TotalSales(),
		TopSellingProduct: h.sales.TopSellingProduct(),
	})
}

func (h *dashboardHandler) SellProduct(w http.ResponseWriter, r *http.Request) {
	var req SellRequest
	if err := h.svc.decode(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	result, err := h.stockSvc.Sell(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusOK, SellResponse{
		Product:    newProductResponse(result.Product),
		SaleValue:  result.SaleValue,
		TotalSales: result.TotalSales,
	})
}
