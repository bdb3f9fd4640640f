package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/domain"
	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

const (
	entriesAscending  = "ASC"
	entriesDescending = "DESC"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	db querier
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return newEntryRepositoryWithDB(pool)
}

func newEntryRepositoryWithDB(db querier) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create inserts a new entry inside the caller's transaction. Entries
// are insert-only; there are no update or delete statements for them.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	_, err := tx.(*Tx).PgxTx().Exec(ctx,
		`INSERT INTO ledger_entries (id, account_id, entry_type, amount, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID,
		entry.AccountID,
		entry.Type.Code(),
		decimalToNumeric(entry.Amount.Decimal()),
		entry.Description,
		entry.CreatedAt,
	)

	return err
}

// GetByAccount lists an account's entries newest first, for display.
func (r *EntryRepository) GetByAccount(ctx context.Context, accountID string) ([]*domain.LedgerEntry, error) {
	return queryAccountEntries(ctx, r.db, accountID, entriesDescending)
}

func queryAccountEntries(ctx context.Context, q querier, accountID, order string) ([]*domain.LedgerEntry, error) {
	// id is a ULID, so it breaks created_at ties in insertion order.
	rows, err := q.Query(ctx,
		`SELECT id, account_id, entry_type, amount, description, created_at
		 FROM ledger_entries
		 WHERE account_id = $1
		 ORDER BY created_at `+order+`, id `+order,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]*domain.LedgerEntry, error) {
	var entries []*domain.LedgerEntry

	for rows.Next() {
		var (
			id, accountID string
			typeCode      int
			amount        pgtype.Numeric
			description   *string
			createdAt     time.Time
		)

		if err := rows.Scan(&id, &accountID, &typeCode, &amount, &description, &createdAt); err != nil {
			return nil, err
		}

		entries = append(entries, domain.RehydrateLedgerEntry(
			id, accountID, domain.EntryType(typeCode),
			numericToDecimal(amount), description, createdAt,
		))
	}

	return entries, rows.Err()
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
