package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/infrastructure/postgres"
)

// TestDB provides isolated test database connections.
type TestDB struct {
	Pool *pgxpool.Pool
	t    *testing.T
}

// NewTestDB connects to the database named by DATABASE_URL and applies
// migrations. Tests that need it are skipped when the variable is unset.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	// Tests run from their package directory, migrations live at the
	// repository root.
	migrationsPath := "migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		migrationsPath = "../../migrations"
	}

	if err := postgres.RunMigrations(zerolog.Nop(), dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	return &TestDB{Pool: pool, t: t}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all data from tables.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `
		TRUNCATE TABLE ledger_entries CASCADE;
		TRUNCATE TABLE accounts CASCADE;
	`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// CreateTestAccount inserts an active account and returns its ID.
func (db *TestDB) CreateTestAccount(ctx context.Context, name string, phone, accountNumber *string) string {
	db.t.Helper()

	id := ulid.Make().String()
	now := time.Now().UTC()

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO accounts (id, customer_name, phone, account_number, is_deleted, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
	`, id, name, phone, accountNumber, now)
	if err != nil {
		db.t.Fatalf("failed to create test account: %v", err)
	}

	return id
}

// CreateDeletedTestAccount inserts a soft-deleted account and returns its ID.
func (db *TestDB) CreateDeletedTestAccount(ctx context.Context, name string) string {
	db.t.Helper()

	id := ulid.Make().String()
	now := time.Now().UTC()

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO accounts (id, customer_name, is_deleted, created_at, deleted_at)
		VALUES ($1, $2, TRUE, $3, $3)
	`, id, name, now)
	if err != nil {
		db.t.Fatalf("failed to create deleted test account: %v", err)
	}

	return id
}

// AddTestEntry inserts a ledger entry directly and returns its ID.
// entryType is the wire code: 1 for debit, 2 for credit.
func (db *TestDB) AddTestEntry(ctx context.Context, accountID string, entryType int, amount decimal.Decimal, description *string) string {
	db.t.Helper()

	id := ulid.Make().String()
	now := time.Now().UTC()

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO ledger_entries (id, account_id, entry_type, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, accountID, entryType, amount.StringFixed(2), description, now)
	if err != nil {
		db.t.Fatalf("failed to insert test entry: %v", err)
	}

	return id
}

// GenerateID generates a new ULID.
func GenerateID() string {
	return ulid.Make().String()
}
