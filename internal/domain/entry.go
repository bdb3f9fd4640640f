package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// EntryType tags a ledger entry as a debit or credit.
// The wire encoding is fixed: 1 = debit, 2 = credit.
type EntryType int

const (
	EntryTypeDebit  EntryType = 1
	EntryTypeCredit EntryType = 2
)

// ParseEntryType maps a wire code to an EntryType. Any code other than
// 1 or 2 is rejected before it reaches the aggregate.
func ParseEntryType(code int) (EntryType, error) {
	switch code {
	case 1:
		return EntryTypeDebit, nil
	case 2:
		return EntryTypeCredit, nil
	default:
		return 0, fmt.Errorf("%w: %d (use 1=debit, 2=credit)", ErrInvalidEntryType, code)
	}
}

// Code returns the wire encoding of the entry type.
func (t EntryType) Code() int {
	return int(t)
}

func (t EntryType) String() string {
	switch t {
	case EntryTypeDebit:
		return "debit"
	case EntryTypeCredit:
		return "credit"
	default:
		return "unknown"
	}
}

const maxDescriptionLength = 500

// LedgerEntry is one immutable credit or debit movement against an
// account. It is created exactly once via Account.AddEntry and never
// updated or deleted afterwards, even when its account is soft-deleted.
type LedgerEntry struct {
	ID          string
	AccountID   string
	Type        EntryType
	Amount      Money
	Description *string
	CreatedAt   time.Time
}

// RehydrateLedgerEntry reconstructs an entry from storage. Stored
// amounts already passed the Money gate, so no validation is repeated.
func RehydrateLedgerEntry(id, accountID string, typ EntryType, amount decimal.Decimal, description *string, createdAt time.Time) *LedgerEntry {
	return &LedgerEntry{
		ID:          id,
		AccountID:   accountID,
		Type:        typ,
		Amount:      Money{value: amount},
		Description: description,
		CreatedAt:   createdAt,
	}
}

// SignedAmount is the entry's contribution to the account balance:
// positive for credits, negative for debits.
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Type == EntryTypeCredit {
		return e.Amount.Decimal()
	}

	return e.Amount.Decimal().Neg()
}

func normalizeDescription(v *string) (*string, error) {
	d := normalizeOptional(v)
	if d != nil && utf8.RuneCountInString(*d) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: exceeds %d characters", ErrInvalidDescription, maxDescriptionLength)
	}

	return d, nil
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
