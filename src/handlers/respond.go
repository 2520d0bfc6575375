package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	db "budget-tracker/src/db/sql"
	"budget-tracker/src/util"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}

// writeError maps store failures to HTTP outcomes: ErrNotFound to 404,
// ValidationError to 400, everything else to a generic 500. The original
// cause is logged, not exposed.
func writeError(w http.ResponseWriter, err error) {
	var verr *util.ValidationError
	switch {
	case errors.Is(err, db.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	default:
		log.Printf("ERROR: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
