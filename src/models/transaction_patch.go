package models

import "github.com/shopspring/decimal"

// TransactionPatch is the body of PATCH /transaction/{id}. Every field is
// optional; only fields present in the body are applied. Category uses
// OptionalString so "omitted" and "explicitly cleared" stay distinct.
// RefreshTimestamp, when true, resets the timestamp to now.
type TransactionPatch struct {
	Description      *string          `json:"description"`
	Amount           *decimal.Decimal `json:"amount"`
	Category         OptionalString   `json:"category"`
	RefreshTimestamp *bool            `json:"refreshTimestamp"`
}

// Empty reports whether the patch carries no changes at all.
func (p TransactionPatch) Empty() bool {
	return p.Description == nil &&
		p.Amount == nil &&
		!p.Category.Set &&
		(p.RefreshTimestamp == nil || !*p.RefreshTimestamp)
}
