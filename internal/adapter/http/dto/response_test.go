package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerdesk/ledgerdesk/internal/adapter/http/dto"
	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

func TestAccountFromOutput_OmitsEmptyOptionals(t *testing.T) {
	out := &usecase.AccountOutput{
		ID:           "acc-1",
		CustomerName: "Jane Doe",
		Balance:      decimal.RequireFromString("60.00"),
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := json.Marshal(dto.AccountFromOutput(out))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NotContains(t, decoded, "phone")
	assert.NotContains(t, decoded, "account_number")
	assert.NotContains(t, decoded, "deleted_at")
	assert.Equal(t, "60", decoded["balance"])
	assert.Equal(t, false, decoded["is_deleted"])
}

func TestPagedAccountsFromResult(t *testing.T) {
	result := &usecase.PagedResult[*usecase.AccountOutput]{
		Items: []*usecase.AccountOutput{
			{ID: "acc-1", CustomerName: "Jane Doe", Balance: decimal.Zero},
		},
		Page:       2,
		PageSize:   10,
		TotalCount: 25,
		TotalPages: 3,
	}

	resp := dto.PagedAccountsFromResult(result)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, int64(25), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
}

func TestLedgerFromOutput(t *testing.T) {
	desc := "deposit"
	out := &usecase.AccountLedgerOutput{
		AccountID:    "acc-1",
		Balance:      decimal.RequireFromString("60.00"),
		TotalCredits: decimal.RequireFromString("100.00"),
		TotalDebits:  decimal.RequireFromString("40.00"),
		Entries: []*usecase.EntryOutput{
			{ID: "e1", AccountID: "acc-1", TypeCode: 2, Amount: decimal.RequireFromString("100.00"), Description: &desc},
			{ID: "e2", AccountID: "acc-1", TypeCode: 1, Amount: decimal.RequireFromString("40.00")},
		},
	}

	resp := dto.LedgerFromOutput(out)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 2, resp.Entries[0].Type)
	assert.Equal(t, 1, resp.Entries[1].Type)
	assert.True(t, resp.Balance.Equal(decimal.RequireFromString("60.00")))
}
