package models

import "github.com/shopspring/decimal"

// BudgetSummary is derived from the ledger on every request, never stored.
// GrandTotal covers every transaction; CategoryTotals only those with a
// category.
type BudgetSummary struct {
	CategoryTotals map[string]decimal.Decimal `json:"category_totals"`
	GrandTotal     decimal.Decimal            `json:"grand_total"`
}

func NewBudgetSummary() *BudgetSummary {
	return &BudgetSummary{
		CategoryTotals: make(map[string]decimal.Decimal),
		GrandTotal:     decimal.Zero,
	}
}

// Add folds one transaction into the summary using decimal arithmetic.
// Uncategorized amounts count toward the grand total only.
func (s *BudgetSummary) Add(category *string, amount decimal.Decimal) {
	s.GrandTotal = s.GrandTotal.Add(amount)
	if category != nil {
		s.CategoryTotals[*category] = s.CategoryTotals[*category].Add(amount)
	}
}
