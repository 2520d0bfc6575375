package handlers

import (
	"context"

	"budget-tracker/src/models"
)

// TransactionStore and SummaryStore are what the handlers need from the
// persistence layer; db.TransactionStore and db.SummaryStore satisfy them.
// Kept as interfaces so handler tests can run against fakes.
type TransactionStore interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Create(ctx context.Context, req *models.TransactionRequest) (*models.Transaction, error)
	Get(ctx context.Context, id int64) (*models.Transaction, error)
	Replace(ctx context.Context, id int64, req *models.TransactionRequest) (*models.Transaction, error)
	Modify(ctx context.Context, id int64, patch *models.TransactionPatch) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

type SummaryStore interface {
	Summarize(ctx context.Context) (*models.BudgetSummary, error)
}
