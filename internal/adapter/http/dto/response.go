package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Phone         *string         `json:"phone,omitempty"`
	AccountNumber *string         `json:"account_number,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	IsDeleted     bool            `json:"is_deleted"`
	CreatedAt     time.Time       `json:"created_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
}

// AccountFromOutput converts a use case projection to a response.
func AccountFromOutput(a *usecase.AccountOutput) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		Phone:         a.Phone,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		IsDeleted:     a.IsDeleted,
		CreatedAt:     a.CreatedAt,
		DeletedAt:     a.DeletedAt,
	}
}

// AccountsFromOutputs converts use case projections to responses.
func AccountsFromOutputs(accounts []*usecase.AccountOutput) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromOutput(a)
	}
	return result
}

// PagedAccountsResponse is one page of accounts plus paging metadata.
type PagedAccountsResponse struct {
	Items      []*AccountResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalCount int64              `json:"total_count"`
	TotalPages int                `json:"total_pages"`
}

// PagedAccountsFromResult converts a use case page to a response.
func PagedAccountsFromResult(r *usecase.PagedResult[*usecase.AccountOutput]) *PagedAccountsResponse {
	return &PagedAccountsResponse{
		Items:      AccountsFromOutputs(r.Items),
		Page:       r.Page,
		PageSize:   r.PageSize,
		TotalCount: r.TotalCount,
		TotalPages: r.TotalPages,
	}
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Type        int             `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EntryFromOutput converts a use case projection to a response.
func EntryFromOutput(e *usecase.EntryOutput) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		AccountID:   e.AccountID,
		Type:        e.TypeCode,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// EntriesFromOutputs converts use case projections to responses.
func EntriesFromOutputs(entries []*usecase.EntryOutput) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromOutput(e)
	}
	return result
}

// AccountLedgerResponse is the full ledger view of one account.
type AccountLedgerResponse struct {
	AccountID    string           `json:"account_id"`
	Balance      decimal.Decimal  `json:"balance"`
	TotalCredits decimal.Decimal  `json:"total_credits"`
	TotalDebits  decimal.Decimal  `json:"total_debits"`
	Entries      []*EntryResponse `json:"entries"`
}

// LedgerFromOutput converts a use case projection to a response.
func LedgerFromOutput(l *usecase.AccountLedgerOutput) *AccountLedgerResponse {
	return &AccountLedgerResponse{
		AccountID:    l.AccountID,
		Balance:      l.Balance,
		TotalCredits: l.TotalCredits,
		TotalDebits:  l.TotalDebits,
		Entries:      EntriesFromOutputs(l.Entries),
	}
}

// DashboardStatsResponse represents dashboard counters.
type DashboardStatsResponse struct {
	TotalAccounts  int64 `json:"total_accounts"`
	ActiveAccounts int64 `json:"active_accounts"`
}

// StatsFromOutput converts dashboard stats to a response.
func StatsFromOutput(s *usecase.DashboardStats) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		TotalAccounts:  s.TotalAccounts,
		ActiveAccounts: s.ActiveAccounts,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
