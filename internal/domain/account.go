package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxCustomerNameLength = 120

// Account is the aggregate root for a customer ledger. It exclusively
// owns its entry sequence; all financial mutation goes through AddEntry
// and the balance is always derived from the entries, never stored.
type Account struct {
	ID            string
	CustomerName  string
	Phone         *string
	AccountNumber *string
	IsDeleted     bool
	CreatedAt     time.Time
	DeletedAt     *time.Time

	entries []*LedgerEntry
}

// NewAccount creates an active account with no entries.
func NewAccount(id, customerName string, phone, accountNumber *string, now time.Time) (*Account, error) {
	name, err := normalizeCustomerName(customerName)
	if err != nil {
		return nil, err
	}

	return &Account{
		ID:            id,
		CustomerName:  name,
		Phone:         normalizeOptional(phone),
		AccountNumber: normalizeOptional(accountNumber),
		CreatedAt:     now,
	}, nil
}

// RehydrateAccount reconstructs an account from storage with its entries
// in insertion order.
func RehydrateAccount(id, customerName string, phone, accountNumber *string, isDeleted bool, createdAt time.Time, deletedAt *time.Time, entries []*LedgerEntry) *Account {
	return &Account{
		ID:            id,
		CustomerName:  customerName,
		Phone:         phone,
		AccountNumber: accountNumber,
		IsDeleted:     isDeleted,
		CreatedAt:     createdAt,
		DeletedAt:     deletedAt,
		entries:       entries,
	}
}

// UpdateCustomer replaces the descriptive fields. It never touches the
// entry sequence, the balance, or the deletion state.
func (a *Account) UpdateCustomer(customerName string, phone, accountNumber *string) error {
	name, err := normalizeCustomerName(customerName)
	if err != nil {
		return err
	}

	a.CustomerName = name
	a.Phone = normalizeOptional(phone)
	a.AccountNumber = normalizeOptional(accountNumber)

	return nil
}

// AddEntry validates and appends a movement. The overdraft check for
// debits runs against the balance of the entries existing before the
// call; on any failure nothing is appended.
func (a *Account) AddEntry(id string, typ EntryType, amount decimal.Decimal, description *string, now time.Time) (*LedgerEntry, error) {
	if a.IsDeleted {
		return nil, ErrAccountInactive
	}

	money, err := NewMoney(amount)
	if err != nil {
		return nil, err
	}

	if typ == EntryTypeDebit && money.Decimal().GreaterThan(a.Balance()) {
		return nil, ErrInsufficientFunds
	}

	desc, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}

	entry := &LedgerEntry{
		ID:          id,
		AccountID:   a.ID,
		Type:        typ,
		Amount:      money,
		Description: desc,
		CreatedAt:   now,
	}

	a.entries = append(a.entries, entry)

	return entry, nil
}

// SoftDelete marks the account inactive. Historical entries are kept.
// Calling it on an already deleted account is a no-op and preserves the
// original deletion timestamp.
func (a *Account) SoftDelete(now time.Time) {
	if a.IsDeleted {
		return
	}

	a.IsDeleted = true
	t := now
	a.DeletedAt = &t
}

// Balance is the sum of signed entry amounts.
func (a *Account) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, e := range a.entries {
		total = total.Add(e.SignedAmount())
	}

	return total
}

// Entries returns a read-only view of the entry sequence in insertion
// order.
func (a *Account) Entries() []*LedgerEntry {
	out := make([]*LedgerEntry, len(a.entries))
	copy(out, a.entries)

	return out
}

func normalizeCustomerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return "", fmt.Errorf("%w: customer name is required", ErrInvalidCustomerName)
	}

	if utf8.RuneCountInString(trimmed) > maxCustomerNameLength {
		return "", fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidCustomerName, maxCustomerNameLength)
	}

	return trimmed, nil
}
