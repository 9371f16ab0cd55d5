package handler

import (
	"net/http"

	"fsanano/stockmgmt/internal/model"
	"fsanano/stockmgmt/internal/service"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type orderResponse struct {
	Message string       `json:"message"`
	Order   *model.Order `json:"order"`
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req service.PlaceOrderInput
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.svc.Place(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Failed to place order")
		return
	}
	writeJSON(w, http.StatusCreated, orderResponse{Message: "Order placed successfully", Order: order})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err, "Error retrieving orders")
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(orders))
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Cancel(r.Context(), chi.URLParam(r, "orderId")); err != nil {
		writeError(w, r, err, "Failed to cancel order")
		return
	}
	writeMessage(w, http.StatusOK, "Order cancelled successfully")
}
