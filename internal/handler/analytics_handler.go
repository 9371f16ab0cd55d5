package handler

import (
	"net/http"

	"fsanano/stockmgmt/internal/service"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

type totalStockResponse struct {
	TotalStock int `json:"totalStock"`
}

func (h *AnalyticsHandler) TotalStock(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.TotalStock(r.Context())
	if err != nil {
		writeError(w, r, err, "Error calculating total stock")
		return
	}
	writeJSON(w, http.StatusOK, totalStockResponse{TotalStock: total})
}

func (h *AnalyticsHandler) StockByType(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.StockByType(r.Context())
	if err != nil {
		writeError(w, r, err, "Error getting stock by type")
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(totals))
}

func (h *AnalyticsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.LowStock(r.Context())
	if err != nil {
		writeError(w, r, err, "Error getting low stock items")
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(products))
}

func (h *AnalyticsHandler) TopStocked(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.TopStocked(r.Context())
	if err != nil {
		writeError(w, r, err, "Error getting top stocked products")
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(products))
}

func (h *AnalyticsHandler) AvgPriceByType(w http.ResponseWriter, r *http.Request) {
	avgs, err := h.svc.AvgPriceByType(r.Context())
	if err != nil {
		writeError(w, r, err, "Error calculating average prices")
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(avgs))
}

func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		writeError(w, r, err, "Error building analytics summary")
		return
	}
	summary.StockByType = emptyIfNil(summary.StockByType)
	summary.LowStock = emptyIfNil(summary.LowStock)
	summary.TopStocked = emptyIfNil(summary.TopStocked)
	summary.AvgPriceByType = emptyIfNil(summary.AvgPriceByType)
	writeJSON(w, http.StatusOK, summary)
}
