package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/bank-accounts-api/internal/api/httpx"
	"github.com/baharkarakas/bank-accounts-api/internal/models"
	repo "github.com/baharkarakas/bank-accounts-api/internal/repository"
	"github.com/baharkarakas/bank-accounts-api/internal/services"
)

const entityName = "bankAccount"

// BankAccountHandler exposes the /api/bank-accounts resource. It holds
// only immutable references; all state lives behind the service.
type BankAccountHandler struct {
	svc     *services.AccountService
	appName string
}

func NewBankAccountHandler(svc *services.AccountService, appName string) *BankAccountHandler {
	return &BankAccountHandler{svc: svc, appName: appName}
}

// Create handles POST /api/bank-accounts.
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.BankAccount
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_json", "malformed request body", nil)
		return
	}
	slog.Debug("request to save bank account", "id", a.ID)

	out, err := h.svc.Create(r.Context(), a)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/api/bank-accounts/"+out.ID)
	httpx.EntityCreationAlert(w, h.appName, entityName, out.ID)
	httpx.WriteJSON(w, http.StatusCreated, out)
}

// Replace handles PUT /api/bank-accounts.
func (h *BankAccountHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var a models.BankAccount
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_json", "malformed request body", nil)
		return
	}
	slog.Debug("request to update bank account", "id", a.ID)

	out, err := h.svc.Replace(r.Context(), a)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	httpx.EntityUpdateAlert(w, h.appName, entityName, out.ID)
	httpx.WriteJSON(w, http.StatusOK, out)
}

// PartialUpdate handles PATCH /api/bank-accounts with an
// application/merge-patch+json body: only fields present in the body
// overwrite the stored record.
func (h *BankAccountHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	var patch models.BankAccount
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_json", "malformed request body", nil)
		return
	}
	slog.Debug("request to partially update bank account", "id", patch.ID)

	out, err := h.svc.PartialUpdate(r.Context(), patch)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	httpx.EntityUpdateAlert(w, h.appName, entityName, out.ID)
	httpx.WriteJSON(w, http.StatusOK, out)
}

// List handles GET /api/bank-accounts.
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	slog.Debug("request to get all bank accounts")
	out, err := h.svc.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if out == nil {
		out = []models.BankAccount{}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Get handles GET /api/bank-accounts/{id}.
func (h *BankAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	slog.Debug("request to get bank account", "id", id)
	out, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/bank-accounts/{id}. Always 204: deleting
// an id that was never stored is indistinguishable from a real delete.
func (h *BankAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	slog.Debug("request to delete bank account", "id", id)
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	httpx.EntityDeletionAlert(w, h.appName, entityName, id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *BankAccountHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrIDExists):
		httpx.WriteError(w, http.StatusBadRequest, "idexists", err.Error(), nil)
	case errors.Is(err, services.ErrIDMissing):
		httpx.WriteError(w, http.StatusBadRequest, "idnull", err.Error(), nil)
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "bank account not found", nil)
	default:
		slog.Error("bank account handler", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
