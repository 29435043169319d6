package api

import (
	"net/http"

	"parksmart/internal/auth"
	"parksmart/internal/service"
)

type ParkingHandler struct {
	Service *service.ParkingService
}

func NewParkingHandler(svc *service.ParkingService) *ParkingHandler {
	return &ParkingHandler{Service: svc}
}

// Dashboard returns the full dataset the main view renders: lots, active
// slots, the caller's active bookings and the occupied slot set.
func (h *ParkingHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	dashboard, err := h.Service.Dashboard(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *ParkingHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.Service.ListLots()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lots)
}

func (h *ParkingHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.Service.ListActiveSlots()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}
