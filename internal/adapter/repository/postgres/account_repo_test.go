package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/domain"
	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

var accountCols = []string{"id", "customer_name", "phone", "account_number", "is_deleted", "created_at", "deleted_at"}

func TestAccountRepositoryCreate(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	account, err := domain.NewAccount("acc-1", "Jane Doe", nil, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockPool.ExpectExec("INSERT INTO accounts").
		WithArgs("acc-1", "Jane Doe", (*string)(nil), (*string)(nil), false, now, (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := newAccountRepositoryWithDB(mockPool)
	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestAccountRepositoryGetByID(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()
	phone := "555-0100"

	mockPool.ExpectQuery("SELECT (.+) FROM accounts WHERE id").
		WithArgs("acc-1").
		WillReturnRows(pgxmock.NewRows(accountCols).
			AddRow("acc-1", "Jane Doe", &phone, nil, false, now, nil))

	mockPool.ExpectQuery("SELECT (.+) FROM ledger_entries").
		WithArgs("acc-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "entry_type", "amount", "description", "created_at"}).
			AddRow("e1", "acc-1", 2, decimalToNumeric(decimal.RequireFromString("100.00")), nil, now).
			AddRow("e2", "acc-1", 1, decimalToNumeric(decimal.RequireFromString("40.00")), nil, now))

	repo := newAccountRepositoryWithDB(mockPool)

	account, err := repo.GetByID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.CustomerName != "Jane Doe" {
		t.Errorf("unexpected name %q", account.CustomerName)
	}

	if !account.Balance().Equal(decimal.RequireFromString("60.00")) {
		t.Errorf("expected replayed balance 60.00, got %s", account.Balance())
	}

	assertExpectations(t, mockPool)
}

func TestAccountRepositoryGetByIDNotFound(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery("SELECT (.+) FROM accounts WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(accountCols))

	repo := newAccountRepositoryWithDB(mockPool)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepositoryGetByIDForUpdateLocksRow(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(`SELECT (.+) FROM accounts WHERE id = \$1 FOR UPDATE`).
		WithArgs("acc-1").
		WillReturnRows(pgxmock.NewRows(accountCols).
			AddRow("acc-1", "Jane Doe", nil, nil, false, now, nil))
	mockPool.ExpectQuery("SELECT (.+) FROM ledger_entries").
		WithArgs("acc-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "entry_type", "amount", "description", "created_at"}))
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := newAccountRepositoryWithDB(mockPool)
	account, err := repo.GetByIDForUpdate(context.Background(), tx, "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.ID != "acc-1" {
		t.Errorf("unexpected account %+v", account)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestAccountRepositoryGetPaged(t *testing.T) {
	tests := []struct {
		name      string
		filter    usecase.AccountFilter
		wantWhere string
	}{
		{
			name:      "active only",
			filter:    usecase.NewAccountFilter("active", ""),
			wantWhere: "WHERE NOT is_deleted",
		},
		{
			name:      "inactive only",
			filter:    usecase.NewAccountFilter("inactive", ""),
			wantWhere: "WHERE is_deleted",
		},
		{
			name:      "search over name, phone and number",
			filter:    usecase.NewAccountFilter("all", "jane"),
			wantWhere: "customer_name ILIKE (.+) OR phone ILIKE (.+) OR account_number ILIKE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPool := newMockPool(t)
			now := time.Now().UTC()
			page := usecase.NormalizePage(2, 10)

			countArgs := []any{}
			pageArgs := []any{}
			if tt.filter.Search != nil {
				countArgs = append(countArgs, "%"+*tt.filter.Search+"%")
				pageArgs = append(pageArgs, "%"+*tt.filter.Search+"%")
			}
			pageArgs = append(pageArgs, 10, 10)

			mockPool.ExpectQuery(`SELECT count\(\*\) FROM accounts ` + tt.wantWhere).
				WithArgs(countArgs...).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(25)))

			mockPool.ExpectQuery(tt.wantWhere + " ORDER BY created_at DESC LIMIT").
				WithArgs(pageArgs...).
				WillReturnRows(pgxmock.NewRows(accountCols).
					AddRow("acc-1", "Jane Doe", nil, nil, false, now, nil))

			repo := newAccountRepositoryWithDB(mockPool)

			accounts, total, err := repo.GetPaged(context.Background(), tt.filter, page)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if total != 25 || len(accounts) != 1 {
				t.Errorf("expected 25 total / 1 row, got %d / %d", total, len(accounts))
			}

			assertExpectations(t, mockPool)
		})
	}
}

func TestAccountRepositoryUpdateNotFound(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	account, err := domain.NewAccount("acc-1", "Jane Doe", nil, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockPool.ExpectBegin()
	mockPool.ExpectExec("UPDATE accounts").
		WithArgs("acc-1", "Jane Doe", (*string)(nil), (*string)(nil), false, (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := newAccountRepositoryWithDB(mockPool)
	if err := repo.Update(context.Background(), tx, account); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepositoryGetCounts(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery(`SELECT count\(\*\), count\(\*\) FILTER`).
		WillReturnRows(pgxmock.NewRows([]string{"total", "active"}).AddRow(int64(42), int64(40)))

	repo := newAccountRepositoryWithDB(mockPool)

	total, active, err := repo.GetCounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 42 || active != 40 {
		t.Errorf("expected 42/40, got %d/%d", total, active)
	}
}
