package db

import (
	"context"

	"budget-tracker/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SummaryStore computes the budget summary fresh on every call. The fold
// happens in Go on decimal.Decimal values so no precision is lost between
// storage and aggregation.
type SummaryStore struct {
	pool *pgxpool.Pool
}

func NewSummaryStore(pool *pgxpool.Pool) *SummaryStore {
	return &SummaryStore{pool: pool}
}

func (s *SummaryStore) Summarize(ctx context.Context) (*models.BudgetSummary, error) {
	rows, err := s.pool.Query(ctx, `SELECT category, amount FROM transactions`)
	if err != nil {
		return nil, persistence("summarize", err)
	}
	defer rows.Close()

	summary := models.NewBudgetSummary()
	for rows.Next() {
		var category *string
		var amount decimal.Decimal
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, persistence("scan summary row", err)
		}
		summary.Add(category, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("summarize", err)
	}
	return summary, nil
}
