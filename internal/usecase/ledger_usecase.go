package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/domain"
)

// LedgerUseCase handles ledger entry business logic.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
	retrier     Retrier
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	retrier Retrier,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// AddEntryInput represents input for appending a ledger entry.
type AddEntryInput struct {
	AccountID   string
	TypeCode    int
	Amount      decimal.Decimal
	Description *string
}

// AddEntry appends one movement to the account's ledger. The account row
// is locked for the duration of the transaction so concurrent debits
// cannot both pass the overdraft check against the same stale balance.
func (uc *LedgerUseCase) AddEntry(ctx context.Context, input AddEntryInput) (*EntryOutput, error) {
	var out *EntryOutput

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
		if err != nil {
			return err
		}

		entryType, err := domain.ParseEntryType(input.TypeCode)
		if err != nil {
			return err
		}

		entry, err := account.AddEntry(uc.idGen.Generate(), entryType, input.Amount, input.Description, time.Now().UTC())
		if err != nil {
			return err
		}

		// Only the new entry is persisted; the existing history is
		// immutable and never rewritten.
		if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		out = newEntryOutput(entry)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// GetAccountLedger returns the full ledger of an account: all entries,
// newest first, plus credit/debit totals and the derived balance.
func (uc *LedgerUseCase) GetAccountLedger(ctx context.Context, accountID string) (*AccountLedgerOutput, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.GetByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	totalCredits := decimal.Zero
	totalDebits := decimal.Zero
	outputs := make([]*EntryOutput, 0, len(entries))

	for _, e := range entries {
		switch e.Type {
		case domain.EntryTypeCredit:
			totalCredits = totalCredits.Add(e.Amount.Decimal())
		case domain.EntryTypeDebit:
			totalDebits = totalDebits.Add(e.Amount.Decimal())
		}

		outputs = append(outputs, newEntryOutput(e))
	}

	return &AccountLedgerOutput{
		AccountID:    account.ID,
		Balance:      totalCredits.Sub(totalDebits),
		TotalCredits: totalCredits,
		TotalDebits:  totalDebits,
		Entries:      outputs,
	}, nil
}
