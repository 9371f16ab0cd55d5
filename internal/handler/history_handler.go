package handler

import (
	"net/http"

	"fsanano/stockmgmt/internal/model"
	"fsanano/stockmgmt/internal/service"
)

type HistoryHandler struct {
	svc *service.HistoryService
}

func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

type billResponse struct {
	Message string      `json:"message"`
	Bill    *model.Bill `json:"bill"`
}

func (h *HistoryHandler) RecordBill(w http.ResponseWriter, r *http.Request) {
	var req service.BillInput
	if !decodeJSON(w, r, &req) {
		return
	}

	bill, err := h.svc.Record(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Failed to generate bill")
		return
	}
	writeJSON(w, http.StatusCreated, billResponse{Message: "Bill generated and saved successfully!", Bill: bill})
}

func (h *HistoryHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err, "Error retrieving bills")
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(bills))
}
