package db

import (
	"context"
	"errors"

	"budget-tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = "id, description, amount, category, timestamp"

// TransactionStore runs all ledger CRUD against the pool it was built
// with. It keeps no state of its own; consistency is the database's job.
type TransactionStore struct {
	pool *pgxpool.Pool
}

func NewTransactionStore(pool *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{pool: pool}
}

func (s *TransactionStore) List(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, persistence("list transactions", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Timestamp); err != nil {
			return nil, persistence("scan transaction", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("list transactions", err)
	}
	return transactions, nil
}

func (s *TransactionStore) Create(ctx context.Context, req *models.TransactionRequest) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (description, amount, category, timestamp)
		VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING ` + transactionColumns
	var t models.Transaction
	err := s.pool.QueryRow(ctx, query,
		req.Description, req.Amount, models.NormalizeCategory(req.Category), req.Timestamp).
		Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Timestamp)
	if err != nil {
		return nil, persistence("create transaction", err)
	}
	return &t, nil
}

func (s *TransactionStore) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions WHERE id = $1
	`
	var t models.Transaction
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("get transaction", err)
	}
	return &t, nil
}

// Replace overwrites description, amount and category. The timestamp is
// left as it was.
func (s *TransactionStore) Replace(ctx context.Context, id int64, req *models.TransactionRequest) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET description = $1, amount = $2, category = $3
		WHERE id = $4
		RETURNING ` + transactionColumns
	var t models.Transaction
	err := s.pool.QueryRow(ctx, query,
		req.Description, req.Amount, models.NormalizeCategory(req.Category), id).
		Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("replace transaction", err)
	}
	return &t, nil
}

// Modify applies the supplied fields inside one transaction so concurrent
// readers never see a half-applied patch. A cancelled context rolls the
// whole thing back.
func (s *TransactionStore) Modify(ctx context.Context, id int64, patch *models.TransactionPatch) (*models.Transaction, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, persistence("begin modify", err)
	}
	defer tx.Rollback(ctx)

	if patch.Description != nil {
		if _, err := tx.Exec(ctx,
			`UPDATE transactions SET description = $1 WHERE id = $2`,
			*patch.Description, id); err != nil {
			return nil, persistence("modify description", err)
		}
	}
	if patch.Amount != nil {
		if _, err := tx.Exec(ctx,
			`UPDATE transactions SET amount = $1 WHERE id = $2`,
			*patch.Amount, id); err != nil {
			return nil, persistence("modify amount", err)
		}
	}
	if patch.Category.Set {
		if _, err := tx.Exec(ctx,
			`UPDATE transactions SET category = $1 WHERE id = $2`,
			models.NormalizeCategory(patch.Category.Value), id); err != nil {
			return nil, persistence("modify category", err)
		}
	}
	if patch.RefreshTimestamp != nil && *patch.RefreshTimestamp {
		if _, err := tx.Exec(ctx,
			`UPDATE transactions SET timestamp = now() WHERE id = $1`, id); err != nil {
			return nil, persistence("modify timestamp", err)
		}
	}

	var t models.Transaction
	err = tx.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id).
		Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("modify transaction", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, persistence("commit modify", err)
	}
	return &t, nil
}

// Delete removes the row if present. A missing id is reported as
// ErrNotFound but is harmless, so deleting twice never fails the process.
func (s *TransactionStore) Delete(ctx context.Context, id int64) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return persistence("delete transaction", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
