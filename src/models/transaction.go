package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount is signed: positive for income, negative for expenses.
// Category is nil when the transaction is uncategorized.
type Transaction struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    *string         `json:"category"`
	Timestamp   time.Time       `json:"timestamp"`
}

// TransactionRequest is the body of POST /transaction and PUT /transaction/{id}.
// Amount is a pointer so a missing field can be told apart from zero.
// Timestamp is optional; when nil on create the database default applies.
type TransactionRequest struct {
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Timestamp   *time.Time       `json:"timestamp"`
}

// NormalizeCategory maps empty or whitespace-only labels to absent so an
// empty string never stands in for "uncategorized" in the database.
func NormalizeCategory(category *string) *string {
	if category == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*category)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
