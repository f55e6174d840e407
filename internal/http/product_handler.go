package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/service"
)

type productHandler struct {
	svc        *Service
	catalogSvc service.CatalogService
}

func newProductHandler(svc *Service, catalogSvc service.CatalogService) *productHandler {
	return &productHandler{
		svc:        svc,
		catalogSvc: catalogSvc,
	}
}

func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogSvc.ListAllProducts(r.Context())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, newProductResponse(product))
	}

	h.svc.respond(w, r, http.StatusOK, items)
}

func (h *productHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := h.svc.decode(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	product, err := h.catalogSvc.CreateProduct(r.Context(), service.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusCreated, newProductResponse(product))
}

func (h *productHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	var req UpdateProductRequest
	if err := h.svc.decode(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	product, err := h.catalogSvc.UpdateProduct(r.Context(), id, service.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusOK, newProductResponse(product))
}

func (h *productHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	if err := h.catalogSvc.DeleteProduct(r.Context(), id); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusNoContent, nil)
}

func (h *productHandler) ListProductOptions(w http.ResponseWriter, r *http.Request) {
	h.svc.respond(w, r, http.StatusOK, h.catalogSvc.ProductOptions())
}
