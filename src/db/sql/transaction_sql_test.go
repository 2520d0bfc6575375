package db

import (
	"context"
	"os"
	"testing"

	budgetdb "budget-tracker/src/db"
	"budget-tracker/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// These tests need a real Postgres. Point TEST_DATABASE_URL at a throwaway
// database to run them; they are skipped otherwise.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := budgetdb.Connect(url, 4)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := budgetdb.RunMigrations(url); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(context.Background(), "TRUNCATE transactions RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func mustCreate(t *testing.T, store *TransactionStore, description, amount string, category *string) *models.Transaction {
	t.Helper()
	amt := decimal.RequireFromString(amount)
	created, err := store.Create(context.Background(), &models.TransactionRequest{
		Description: description,
		Amount:      &amt,
		Category:    category,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return created
}

func TestCreateGetRoundTrip(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	food := "food"

	created := mustCreate(t, store, "coffee", "19.99", &food)
	if created.ID == 0 || created.Timestamp.IsZero() {
		t.Fatalf("id/timestamp not assigned: %+v", created)
	}

	got, err := store.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != "coffee" || got.Category == nil || *got.Category != "food" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.Amount.String() != "19.99" {
		t.Fatalf("amount = %s, want exactly 19.99", got.Amount)
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	if _, err := store.Get(context.Background(), 12345); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListInsertionOrder(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	first := mustCreate(t, store, "a", "1", nil)
	second := mustCreate(t, store, "b", "2", nil)

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestEmptyCategoryStoredAsNull(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	empty := ""
	created := mustCreate(t, store, "misc", "5", &empty)
	if created.Category != nil {
		t.Fatalf("category = %q, want NULL", *created.Category)
	}
}

func TestReplaceKeepsTimestamp(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	created := mustCreate(t, store, "old", "1", nil)

	amt := decimal.RequireFromString("-2.50")
	rent := "rent"
	updated, err := store.Replace(context.Background(), created.ID, &models.TransactionRequest{
		Description: "new",
		Amount:      &amt,
		Category:    &rent,
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if updated.Description != "new" || updated.Category == nil || *updated.Category != "rent" {
		t.Fatalf("replace mismatch: %+v", updated)
	}
	if !updated.Timestamp.Equal(created.Timestamp) {
		t.Fatalf("timestamp changed on replace: %v -> %v", created.Timestamp, updated.Timestamp)
	}

	if _, err := store.Replace(context.Background(), 99999, &models.TransactionRequest{
		Description: "x", Amount: &amt,
	}); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestModifyChangesOnlySuppliedFields(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	food := "food"
	created := mustCreate(t, store, "groceries", "69", &food)

	amt := decimal.RequireFromString("42.50")
	updated, err := store.Modify(context.Background(), created.ID, &models.TransactionPatch{Amount: &amt})
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if !updated.Amount.Equal(amt) {
		t.Fatalf("amount = %s, want 42.50", updated.Amount)
	}
	if updated.Description != created.Description {
		t.Fatalf("description changed: %q", updated.Description)
	}
	if updated.Category == nil || *updated.Category != "food" {
		t.Fatalf("category changed: %v", updated.Category)
	}
	if !updated.Timestamp.Equal(created.Timestamp) {
		t.Fatal("timestamp changed without refreshTimestamp")
	}
}

func TestModifyClearsCategoryOnExplicitNull(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	food := "food"
	created := mustCreate(t, store, "x", "1", &food)

	updated, err := store.Modify(context.Background(), created.ID, &models.TransactionPatch{
		Category: models.OptionalString{Set: true},
	})
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if updated.Category != nil {
		t.Fatalf("category = %q, want cleared", *updated.Category)
	}
}

func TestModifyRefreshTimestamp(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	created := mustCreate(t, store, "x", "1", nil)

	refresh := true
	updated, err := store.Modify(context.Background(), created.ID, &models.TransactionPatch{
		RefreshTimestamp: &refresh,
	})
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if !updated.Timestamp.After(created.Timestamp) {
		t.Fatalf("timestamp not refreshed: %v -> %v", created.Timestamp, updated.Timestamp)
	}
}

func TestModifyMissingIsNotFound(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	amt := decimal.NewFromInt(1)
	if _, err := store.Modify(context.Background(), 99999, &models.TransactionPatch{Amount: &amt}); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	created := mustCreate(t, store, "x", "1", nil)

	if err := store.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete(context.Background(), created.ID); err != ErrNotFound {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	store := NewTransactionStore(testPool(t))
	first := mustCreate(t, store, "a", "1", nil)
	if err := store.Delete(context.Background(), first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second := mustCreate(t, store, "b", "2", nil)
	if second.ID <= first.ID {
		t.Fatalf("id %d reused after deleting %d", second.ID, first.ID)
	}
}

func TestSummarize(t *testing.T) {
	pool := testPool(t)
	store := NewTransactionStore(pool)
	summaries := NewSummaryStore(pool)

	groceries := "groceries"
	rent := "rent"
	mustCreate(t, store, "groceries", "69", &groceries)
	mustCreate(t, store, "rent", "-67", &rent)
	mustCreate(t, store, "cash", "0.10", nil)

	summary, err := summaries.Summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !summary.GrandTotal.Equal(decimal.RequireFromString("2.10")) {
		t.Fatalf("grand total = %s, want 2.10", summary.GrandTotal)
	}
	if len(summary.CategoryTotals) != 2 {
		t.Fatalf("category totals = %v, uncategorized must not appear", summary.CategoryTotals)
	}
	if !summary.CategoryTotals["groceries"].Equal(decimal.RequireFromString("69")) {
		t.Fatalf("groceries = %s", summary.CategoryTotals["groceries"])
	}
	if !summary.CategoryTotals["rent"].Equal(decimal.RequireFromString("-67")) {
		t.Fatalf("rent = %s", summary.CategoryTotals["rent"])
	}
}
