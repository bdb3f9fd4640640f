package usecase

import (
	"context"
	"time"

	"github.com/ledgerdesk/ledgerdesk/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	GetAll(ctx context.Context) ([]*domain.Account, error)
	GetPaged(ctx context.Context, filter AccountFilter, page PageRequest) ([]*domain.Account, int64, error)
	Update(ctx context.Context, tx Transaction, account *domain.Account) error
	Remove(ctx context.Context, account *domain.Account) error
	GetCounts(ctx context.Context) (total, active int64, err error)
}

// EntryRepository defines data access for ledger entries. Entries are
// append-only: there is no update or delete.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	GetByAccount(ctx context.Context, accountID string) ([]*domain.LedgerEntry, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations. Get returns nil bytes on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier re-runs an operation on transient persistence failures such as
// deadlocks. Domain errors pass through unchanged.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
