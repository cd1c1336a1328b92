package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/bank-accounts-api/internal/models"
)

// ErrNotFound is returned by GetByID when no row matches the id.
var ErrNotFound = errors.New("not found")

type BankAccounts interface {
	// Save persists the account, assigning an id when none is set, and
	// returns the stored representation.
	Save(ctx context.Context, a models.BankAccount) (models.BankAccount, error)
	GetByID(ctx context.Context, id string) (models.BankAccount, error)
	List(ctx context.Context) ([]models.BankAccount, error)
	// Delete is idempotent: deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
