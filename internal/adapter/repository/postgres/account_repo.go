package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerdesk/ledgerdesk/internal/domain"
	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

// querier is the subset of pgx shared by pools and transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const accountColumns = `id, customer_name, phone, account_number, is_deleted, created_at, deleted_at`

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	db querier
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return newAccountRepositoryWithDB(pool)
}

func newAccountRepositoryWithDB(db querier) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, customer_name, phone, account_number, is_deleted, created_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID,
		account.CustomerName,
		account.Phone,
		account.AccountNumber,
		account.IsDeleted,
		account.CreatedAt,
		account.DeletedAt,
	)

	return err
}

// GetByID retrieves an account with its full entry history. Soft-deleted
// accounts are returned too; only missing rows map to ErrAccountNotFound.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return getAccount(ctx, r.db, id, false)
}

// GetByIDForUpdate retrieves an account with a FOR UPDATE row lock so a
// concurrent writer cannot validate against the same balance.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	return getAccount(ctx, tx.(*Tx).PgxTx(), id, true)
}

func getAccount(ctx context.Context, q querier, id string, forUpdate bool) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	account, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	// Entries load in insertion order so the aggregate can replay its
	// balance.
	entries, err := queryAccountEntries(ctx, q, id, entriesAscending)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateAccount(
		account.id, account.customerName,
		account.phone, account.accountNumber,
		account.isDeleted, account.createdAt, account.deletedAt,
		entries,
	), nil
}

// GetAll lists every account, newest first, without entry histories.
func (r *AccountRepository) GetAll(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// GetPaged lists one page of accounts matching the filter, newest first,
// plus the total match count. Entry histories are not loaded.
func (r *AccountRepository) GetPaged(ctx context.Context, filter usecase.AccountFilter, page usecase.PageRequest) ([]*domain.Account, int64, error) {
	var (
		conditions []string
		args       []any
	)

	switch filter.Status {
	case usecase.StatusActive:
		conditions = append(conditions, "NOT is_deleted")
	case usecase.StatusInactive:
		conditions = append(conditions, "is_deleted")
	case usecase.StatusAll:
	}

	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(customer_name ILIKE $%d OR phone ILIKE $%d OR account_number ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM accounts`+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT %s FROM accounts%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		accountColumns, where, len(args)+1, len(args)+2)
	args = append(args, page.PageSize, page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, 0, err
	}

	return accounts, totalCount, nil
}

// Update persists the account's descriptive fields and deletion state.
func (r *AccountRepository) Update(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	tag, err := tx.(*Tx).PgxTx().Exec(ctx,
		`UPDATE accounts
		 SET customer_name = $2, phone = $3, account_number = $4, is_deleted = $5, deleted_at = $6
		 WHERE id = $1`,
		account.ID,
		account.CustomerName,
		account.Phone,
		account.AccountNumber,
		account.IsDeleted,
		account.DeletedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// Remove hard-deletes the account row and, via the FK cascade, its
// entries. The service layer never calls this; it exists for operator
// tooling.
func (r *AccountRepository) Remove(ctx context.Context, account *domain.Account) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, account.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// GetCounts returns the total and active account counts.
func (r *AccountRepository) GetCounts(ctx context.Context) (int64, int64, error) {
	var total, active int64

	err := r.db.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE NOT is_deleted) FROM accounts`,
	).Scan(&total, &active)
	if err != nil {
		return 0, 0, err
	}

	return total, active, nil
}

type accountRow struct {
	id            string
	customerName  string
	phone         *string
	accountNumber *string
	isDeleted     bool
	createdAt     time.Time
	deletedAt     *time.Time
}

func scanAccount(row pgx.Row) (accountRow, error) {
	var a accountRow

	err := row.Scan(&a.id, &a.customerName, &a.phone, &a.accountNumber, &a.isDeleted, &a.createdAt, &a.deletedAt)

	return a, err
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, domain.RehydrateAccount(
			a.id, a.customerName, a.phone, a.accountNumber,
			a.isDeleted, a.createdAt, a.deletedAt, nil,
		))
	}

	return accounts, rows.Err()
}
