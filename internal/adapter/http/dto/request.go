package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	CustomerName  string  `json:"customer_name"`
	Phone         *string `json:"phone"`
	AccountNumber *string `json:"account_number"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		AccountNumber: r.AccountNumber,
	}
}

// UpdateAccountRequest represents a request to update an account's
// descriptive fields. Absent optional fields clear the stored value.
type UpdateAccountRequest struct {
	CustomerName  string  `json:"customer_name"`
	Phone         *string `json:"phone"`
	AccountNumber *string `json:"account_number"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		AccountNumber: r.AccountNumber,
	}
}

// AddEntryRequest represents a request to append a ledger entry.
// Type uses the wire encoding 1=debit, 2=credit.
type AddEntryRequest struct {
	AccountID   string          `json:"account_id"`
	Type        int             `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *AddEntryRequest) ToUseCaseInput() usecase.AddEntryInput {
	return usecase.AddEntryInput{
		AccountID:   r.AccountID,
		TypeCode:    r.Type,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
