package handler

import (
	"net/http"

	"fsanano/stockmgmt/internal/model"
	"fsanano/stockmgmt/internal/service"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type productResponse struct {
	Message string         `json:"message"`
	Product *model.Product `json:"product"`
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to get products")
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(products))
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req service.ProductInput
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Error adding product")
		return
	}
	writeJSON(w, http.StatusCreated, productResponse{Message: "Product added successfully", Product: product})
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req service.ProductInput
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, "Error updating product")
		return
	}
	writeJSON(w, http.StatusOK, productResponse{Message: "Product updated successfully", Product: product})
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Error deleting product")
		return
	}
	writeMessage(w, http.StatusOK, "Product deleted successfully")
}
