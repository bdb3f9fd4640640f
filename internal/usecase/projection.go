package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/domain"
)

// AccountOutput is the account projection produced at the service
// boundary. Balance is always recomputed from entries, never stored.
type AccountOutput struct {
	ID            string
	CustomerName  string
	Phone         *string
	AccountNumber *string
	Balance       decimal.Decimal
	IsDeleted     bool
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

func newAccountOutput(a *domain.Account, balance decimal.Decimal) *AccountOutput {
	return &AccountOutput{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		Phone:         a.Phone,
		AccountNumber: a.AccountNumber,
		Balance:       balance,
		IsDeleted:     a.IsDeleted,
		CreatedAt:     a.CreatedAt,
		DeletedAt:     a.DeletedAt,
	}
}

// EntryOutput is the ledger entry projection.
type EntryOutput struct {
	ID          string
	AccountID   string
	TypeCode    int
	Amount      decimal.Decimal
	Description *string
	CreatedAt   time.Time
}

func newEntryOutput(e *domain.LedgerEntry) *EntryOutput {
	return &EntryOutput{
		ID:          e.ID,
		AccountID:   e.AccountID,
		TypeCode:    e.Type.Code(),
		Amount:      e.Amount.Decimal(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// AccountLedgerOutput is the composite ledger projection for one account.
type AccountLedgerOutput struct {
	AccountID    string
	Balance      decimal.Decimal
	TotalCredits decimal.Decimal
	TotalDebits  decimal.Decimal
	Entries      []*EntryOutput
}

func sumSigned(entries []*domain.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.SignedAmount())
	}

	return total
}
