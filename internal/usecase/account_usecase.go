package usecase

import (
	"context"
	"time"

	"github.com/ledgerdesk/ledgerdesk/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
	retrier     Retrier
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	retrier Retrier,
) *AccountUseCase {
	return &AccountUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	CustomerName  string
	Phone         *string
	AccountNumber *string
}

// CreateAccount creates a new active account with zero balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*AccountOutput, error) {
	account, err := domain.NewAccount(
		uc.idGen.Generate(),
		input.CustomerName,
		input.Phone,
		input.AccountNumber,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return newAccountOutput(account, account.Balance()), nil
}

// ListAccountsInput represents input for listing accounts. Page, size,
// status and search arrive raw from the transport layer and are
// normalized here.
type ListAccountsInput struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

// ListAccounts returns one page of accounts matching the filter, newest
// first, with their balances.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) (*PagedResult[*AccountOutput], error) {
	page := NormalizePage(input.Page, input.PageSize)
	filter := NewAccountFilter(input.Status, input.Search)

	accounts, totalCount, err := uc.accountRepo.GetPaged(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	items := make([]*AccountOutput, 0, len(accounts))

	for _, account := range accounts {
		// One entries query per listed account. Acceptable at page-size
		// scale; an aggregated balance query is the first optimization
		// if this ever shows up in profiles.
		entries, err := uc.entryRepo.GetByAccount(ctx, account.ID)
		if err != nil {
			return nil, err
		}

		items = append(items, newAccountOutput(account, sumSigned(entries)))
	}

	result := NewPagedResult(items, page, totalCount)

	return &result, nil
}

// UpdateAccountInput represents input for updating descriptive fields.
type UpdateAccountInput struct {
	CustomerName  string
	Phone         *string
	AccountNumber *string
}

// UpdateAccount replaces the account's descriptive fields. Entries,
// balance and deletion state are untouched.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id string, input UpdateAccountInput) (*AccountOutput, error) {
	var out *AccountOutput

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := account.UpdateCustomer(input.CustomerName, input.Phone, input.AccountNumber); err != nil {
			return err
		}

		if err := uc.accountRepo.Update(ctx, tx, account); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		out = newAccountOutput(account, account.Balance())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteAccount soft-deletes the account. The row and its entries are
// never removed.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id string) error {
	return uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		account.SoftDelete(time.Now().UTC())

		if err := uc.accountRepo.Update(ctx, tx, account); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
}
