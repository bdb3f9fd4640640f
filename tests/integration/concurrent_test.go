package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/adapter/repository/postgres"
	"github.com/ledgerdesk/ledgerdesk/internal/domain"
	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
	"github.com/ledgerdesk/ledgerdesk/tests/testutil"
)

func TestConcurrentEntries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(zerolog.Nop())

	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, entryRepo, idGen, retrier)

	t.Run("concurrent debits never overdraw the account", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		// Balance covers exactly 10 of the 20 attempted debits.
		id := testDB.CreateTestAccount(ctx, "contended", nil, nil)
		testDB.AddTestEntry(ctx, id, 2, decimal.NewFromInt(100), nil)

		numDebits := 20
		debitAmount := decimal.NewFromInt(10)

		var (
			wg             sync.WaitGroup
			successCount   atomic.Int32
			overdraftCount atomic.Int32
		)

		wg.Add(numDebits)

		for range numDebits {
			go func() {
				defer wg.Done()

				_, err := ledgerUC.AddEntry(ctx, usecase.AddEntryInput{
					AccountID: id,
					TypeCode:  1,
					Amount:    debitAmount,
				})
				switch {
				case err == nil:
					successCount.Add(1)
				case errors.Is(err, domain.ErrInsufficientFunds):
					overdraftCount.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}

		wg.Wait()

		if successCount.Load() != 10 {
			t.Errorf("expected 10 successful debits, got %d (overdraft rejections: %d)", successCount.Load(), overdraftCount.Load())
		}
		if overdraftCount.Load() != 10 {
			t.Errorf("expected 10 overdraft rejections, got %d", overdraftCount.Load())
		}

		account, err := accountRepo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("failed to load account: %v", err)
		}
		if !account.Balance().IsZero() {
			t.Errorf("expected final balance 0, got %s", account.Balance())
		}
	})

	t.Run("concurrent credits all land", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		id := testDB.CreateTestAccount(ctx, "busy", nil, nil)

		numCredits := 50

		var (
			wg           sync.WaitGroup
			successCount atomic.Int32
		)

		wg.Add(numCredits)

		for range numCredits {
			go func() {
				defer wg.Done()

				_, err := ledgerUC.AddEntry(ctx, usecase.AddEntryInput{
					AccountID: id,
					TypeCode:  2,
					Amount:    decimal.NewFromInt(1),
				})
				if err == nil {
					successCount.Add(1)
				}
			}()
		}

		wg.Wait()

		if successCount.Load() != int32(numCredits) {
			t.Errorf("expected %d successful credits, got %d", numCredits, successCount.Load())
		}

		account, err := accountRepo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("failed to load account: %v", err)
		}
		if !account.Balance().Equal(decimal.NewFromInt(int64(numCredits))) {
			t.Errorf("expected balance %d, got %s", numCredits, account.Balance())
		}
	})
}
