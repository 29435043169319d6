package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"parksmart/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError surfaces the failure message for the current attempt. Service
// errors carrying a status code keep it; everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *apperr.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
