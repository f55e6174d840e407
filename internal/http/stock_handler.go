package http

import (
	"net/http"

	"github.com/wingscafe/inventory/internal/service"
)

type stockHandler struct {
	svc      *Service
	stockSvc service.StockService
}

func newStockHandler(svc *Service, stockSvc service.StockService) *stockHandler {
	return &stockHandler{
		svc:      svc,
		stockSvc: stockSvc,
	}
}

func (h *stockHandler) ListStockRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.stockSvc.ListAllStockRecords(r.Context())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	items := make([]StockRecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, newStockRecordResponse(rec))
	}

	h.svc.respond(w, r, http.StatusOK, items)
}

func (h *stockHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req StockMovementRequest
	if err := h.svc.decode(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	rec, err := h.stockSvc.AddStock(r.Context(), req.ProductName, req.Quantity)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusCreated, newStockRecordResponse(rec))
}

func (h *stockHandler) ReduceStock(w http.ResponseWriter, r *http.Request) {
	var req StockMovementRequest
	if err := h.svc.decode(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	rec, err := h.stockSvc.ReduceStock(r.Context(), req.ProductName, req.Quantity)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusOK, newStockRecordResponse(rec))
}
