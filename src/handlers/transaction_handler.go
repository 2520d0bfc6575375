package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"budget-tracker/src/models"
	"budget-tracker/src/util"

	"github.com/go-chi/chi/v5"
)

func ListTransactions(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactions, err := store.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, transactions)
	}
}

func CreateTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := validateRequest(&req); err != nil {
			writeError(w, err)
			return
		}
		created, err := store.Create(r.Context(), &req)
		if err != nil {
			writeError(w, err)
			return
		}
		log.Printf("INFO: Created transaction id %d", created.ID)
		w.Header().Set("Location", strconv.FormatInt(created.ID, 10))
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := transactionID(w, r)
		if !ok {
			return
		}
		transaction, err := store.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, transaction)
	}
}

func ReplaceTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := transactionID(w, r)
		if !ok {
			return
		}
		var req models.TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode replace transaction request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := validateRequest(&req); err != nil {
			writeError(w, err)
			return
		}
		updated, err := store.Replace(r.Context(), id, &req)
		if err != nil {
			writeError(w, err)
			return
		}
		log.Printf("INFO: Replaced transaction id %d", updated.ID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func ModifyTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := transactionID(w, r)
		if !ok {
			return
		}
		var patch models.TransactionPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Printf("ERROR: Failed to decode modify transaction request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if patch.Description != nil && !util.ValidateDescription(*patch.Description) {
			writeError(w, &util.ValidationError{Field: "description", Reason: "must not be empty"})
			return
		}
		updated, err := store.Modify(r.Context(), id, &patch)
		if err != nil {
			writeError(w, err)
			return
		}
		log.Printf("INFO: Modified transaction id %d", updated.ID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := transactionID(w, r)
		if !ok {
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		log.Printf("INFO: Deleted transaction id %d", id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func transactionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Printf("ERROR: Invalid transaction id param: %s", idStr)
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func validateRequest(req *models.TransactionRequest) error {
	if !util.ValidateDescription(req.Description) {
		return &util.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if req.Amount == nil {
		return &util.ValidationError{Field: "amount", Reason: "is required"}
	}
	return nil
}
