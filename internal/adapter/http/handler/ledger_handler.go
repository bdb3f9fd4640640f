package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerdesk/ledgerdesk/internal/adapter/http/dto"
	"github.com/ledgerdesk/ledgerdesk/internal/domain"
	"github.com/ledgerdesk/ledgerdesk/internal/infrastructure/metrics"
	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	AddEntry(ctx context.Context, input usecase.AddEntryInput) (*usecase.EntryOutput, error)
	GetAccountLedger(ctx context.Context, accountID string) (*usecase.AccountLedgerOutput, error)
}

// LedgerHandler handles ledger-related HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
	metrics  *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, metrics: m}
}

// AddEntry appends a ledger entry to an account.
func (h *LedgerHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.AddEntry(r.Context(), req.ToUseCaseInput())
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			h.metrics.OverdraftRejections.Inc()
		}

		status := mapDomainError(err)
		writeError(w, status, "failed to add entry", err.Error())

		return
	}

	typeName := domain.EntryType(entry.TypeCode).String()
	h.metrics.EntriesAppended.WithLabelValues(typeName).Inc()

	amount, _ := entry.Amount.Float64()
	h.metrics.EntryAmount.WithLabelValues(typeName).Observe(amount)

	writeJSON(w, http.StatusCreated, dto.EntryFromOutput(entry))
}

// GetLedger returns an account's full ledger with totals.
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	ledger, err := h.ledgerUC.GetAccountLedger(r.Context(), accountID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get ledger", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromOutput(ledger))
}
