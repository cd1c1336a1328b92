package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/baharkarakas/bank-accounts-api/internal/metrics"
	"github.com/baharkarakas/bank-accounts-api/internal/models"
	repo "github.com/baharkarakas/bank-accounts-api/internal/repository"
	"github.com/baharkarakas/bank-accounts-api/internal/worker"
)

var (
	// ErrIDExists: a create request carried an id; ids are assigned by
	// the repository only.
	ErrIDExists = errors.New("a new bankAccount cannot already have an id")
	// ErrIDMissing: an update or patch request carried no id.
	ErrIDMissing = errors.New("invalid id")
)

type AccountService struct {
	accounts repo.BankAccounts
	audits   repo.AuditLogs
	wp       *worker.Pool
}

func NewAccountService(accounts repo.BankAccounts, audits repo.AuditLogs, wp *worker.Pool) *AccountService {
	return &AccountService{accounts: accounts, audits: audits, wp: wp}
}

func (s *AccountService) Create(ctx context.Context, a models.BankAccount) (models.BankAccount, error) {
	if a.ID != "" {
		metrics.AccountOpsFailed.Inc()
		return models.BankAccount{}, ErrIDExists
	}
	out, err := s.accounts.Save(ctx, a)
	if err != nil {
		metrics.AccountOpsFailed.Inc()
		return models.BankAccount{}, err
	}
	metrics.AccountOpsTotal.WithLabelValues("create").Inc()
	s.audit(out.ID, "create", map[string]any{"name": out.Name})
	return out, nil
}

// Replace saves the full entity with overwrite semantics; an id the
// repository has never seen is stored under that id, like any other save.
func (s *AccountService) Replace(ctx context.Context, a models.BankAccount) (models.BankAccount, error) {
	if a.ID == "" {
		metrics.AccountOpsFailed.Inc()
		return models.BankAccount{}, ErrIDMissing
	}
	out, err := s.accounts.Save(ctx, a)
	if err != nil {
		metrics.AccountOpsFailed.Inc()
		return models.BankAccount{}, err
	}
	metrics.AccountOpsTotal.WithLabelValues("replace").Inc()
	s.audit(out.ID, "replace", nil)
	return out, nil
}

// PartialUpdate merges the non-empty fields of patch onto the stored
// record and saves the result.
func (s *AccountService) PartialUpdate(ctx context.Context, patch models.BankAccount) (models.BankAccount, error) {
	if patch.ID == "" {
		metrics.AccountOpsFailed.Inc()
		return models.BankAccount{}, ErrIDMissing
	}
	existing, err := s.accounts.GetByID(ctx, patch.ID)
	if err != nil {
		metrics.AccountOpsFailed.Inc()
		return models.BankAccount{}, err
	}
	existing.ApplyPatch(patch)
	out, err := s.accounts.Save(ctx, existing)
	if err != nil {
		metrics.AccountOpsFailed.Inc()
		return models.BankAccount{}, err
	}
	metrics.AccountOpsTotal.WithLabelValues("patch").Inc()
	s.audit(out.ID, "patch", nil)
	return out, nil
}

func (s *AccountService) List(ctx context.Context) ([]models.BankAccount, error) {
	out, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	metrics.AccountOpsTotal.WithLabelValues("list").Inc()
	return out, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (models.BankAccount, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return models.BankAccount{}, err
	}
	metrics.AccountOpsTotal.WithLabelValues("get").Inc()
	return a, nil
}

// Delete is idempotent; a missing id is deleted "successfully".
func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		metrics.AccountOpsFailed.Inc()
		return err
	}
	metrics.AccountOpsTotal.WithLabelValues("delete").Inc()
	s.audit(id, "delete", nil)
	return nil
}

// audit queues the write on the worker pool so a slow audit insert
// never holds up a response. The request context may already be done
// by the time the task runs, hence Background.
func (s *AccountService) audit(id, action string, details map[string]any) {
	s.wp.Submit(func() {
		l := models.AuditLog{EntityType: "bankAccount", EntityID: id, Action: action, Details: details}
		if err := s.audits.Create(context.Background(), l); err != nil {
			slog.Error("audit write", "action", action, "id", id, "err", err)
		}
	})
}
