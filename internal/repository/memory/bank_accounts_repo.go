// Package memory holds map-backed repositories used by tests and by
// DB-less dev runs (APP_STORE=memory).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/bank-accounts-api/internal/models"
	repo "github.com/baharkarakas/bank-accounts-api/internal/repository"
	"github.com/google/uuid"
)

type Repositories struct {
	BankAccounts repo.BankAccounts
	AuditLogs    *AuditLogs
}

func NewRepositories() Repositories {
	return Repositories{
		BankAccounts: &bankAccountsRepo{accounts: map[string]models.BankAccount{}},
		AuditLogs:    &AuditLogs{},
	}
}

type bankAccountsRepo struct {
	mu       sync.RWMutex
	accounts map[string]models.BankAccount
}

func (r *bankAccountsRepo) Save(_ context.Context, a models.BankAccount) (models.BankAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if prev, ok := r.accounts[a.ID]; ok {
		a.CreatedAt = prev.CreatedAt
	} else {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	r.accounts[a.ID] = clone(a)
	return a, nil
}

func (r *bankAccountsRepo) GetByID(_ context.Context, id string) (models.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return models.BankAccount{}, repo.ErrNotFound
	}
	return clone(a), nil
}

func (r *bankAccountsRepo) List(_ context.Context) ([]models.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BankAccount, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, clone(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *bankAccountsRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
	return nil
}

// clone deep-copies the pointer fields so callers never share memory
// with the stored record.
func clone(a models.BankAccount) models.BankAccount {
	if a.Name != nil {
		n := *a.Name
		a.Name = &n
	}
	if a.Balance != nil {
		b := *a.Balance
		a.Balance = &b
	}
	return a
}
