package api

import (
	"encoding/json"
	"net/http"

	"parksmart/internal/service"
)

type ComplaintHandler struct {
	Service *service.ComplaintService
}

func NewComplaintHandler(svc *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{Service: svc}
}

func (h *ComplaintHandler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingID   string `json:"booking_id"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	complaint, err := h.Service.SubmitComplaint(req.BookingID, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}
