package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerdesk/ledgerdesk/internal/adapter/http/dto"
	"github.com/ledgerdesk/ledgerdesk/internal/infrastructure/metrics"
	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*usecase.AccountOutput, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) (*usecase.PagedResult[*usecase.AccountOutput], error)
	UpdateAccount(ctx context.Context, id string, input usecase.UpdateAccountInput) (*usecase.AccountOutput, error)
	DeleteAccount(ctx context.Context, id string) error
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
	metrics   *metrics.Metrics
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{accountUC: accountUC, metrics: m}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create account", err.Error())

		return
	}

	h.metrics.AccountsCreated.Inc()

	writeJSON(w, http.StatusCreated, dto.AccountFromOutput(account))
}

// List lists accounts with paging and optional status/search filters.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.accountUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 10),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PagedAccountsFromResult(result))
}

// Update replaces the account's descriptive fields.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.UpdateAccount(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update account", err.Error())

		return
	}

	h.metrics.AccountsUpdated.Inc()

	writeJSON(w, http.StatusOK, dto.AccountFromOutput(account))
}

// Delete soft-deletes an account.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	if err := h.accountUC.DeleteAccount(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete account", err.Error())

		return
	}

	h.metrics.AccountsDeleted.Inc()

	w.WriteHeader(http.StatusNoContent)
}
