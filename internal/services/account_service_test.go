package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/bank-accounts-api/internal/models"
	repo "github.com/baharkarakas/bank-accounts-api/internal/repository"
	"github.com/baharkarakas/bank-accounts-api/internal/repository/memory"
	"github.com/baharkarakas/bank-accounts-api/internal/services"
	"github.com/baharkarakas/bank-accounts-api/internal/worker"
)

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) (*services.AccountService, memory.Repositories, *worker.Pool) {
	t.Helper()
	m := memory.NewRepositories()
	wp := worker.NewPool(1)
	return services.NewAccountService(m.BankAccounts, m.AuditLogs, wp), m, wp
}

func TestCreateAssignsID(t *testing.T) {
	svc, _, wp := newService(t)
	defer wp.Stop()
	ctx := context.Background()

	out, err := svc.Create(ctx, models.BankAccount{Name: ptr("A"), Balance: ptr(5.0)})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	require.False(t, out.CreatedAt.IsZero())

	_, err = svc.Create(ctx, models.BankAccount{ID: "preset"})
	require.ErrorIs(t, err, services.ErrIDExists)
}

func TestReplaceRequiresID(t *testing.T) {
	svc, _, wp := newService(t)
	defer wp.Stop()

	_, err := svc.Replace(context.Background(), models.BankAccount{Name: ptr("A")})
	require.ErrorIs(t, err, services.ErrIDMissing)
}

func TestPartialUpdateMerge(t *testing.T) {
	svc, _, wp := newService(t)
	defer wp.Stop()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.BankAccount{Name: ptr("A"), Balance: ptr(10.0)})
	require.NoError(t, err)

	out, err := svc.PartialUpdate(ctx, models.BankAccount{ID: created.ID, Balance: ptr(20.0)})
	require.NoError(t, err)
	require.Equal(t, "A", *out.Name)
	require.Equal(t, 20.0, *out.Balance)

	out, err = svc.PartialUpdate(ctx, models.BankAccount{ID: created.ID, Name: ptr("B")})
	require.NoError(t, err)
	require.Equal(t, "B", *out.Name)
	require.Equal(t, 20.0, *out.Balance)

	_, err = svc.PartialUpdate(ctx, models.BankAccount{Name: ptr("B")})
	require.ErrorIs(t, err, services.ErrIDMissing)

	_, err = svc.PartialUpdate(ctx, models.BankAccount{ID: "unknown", Name: ptr("B")})
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDeleteUnknownIDIsNoError(t *testing.T) {
	svc, _, wp := newService(t)
	defer wp.Stop()

	require.NoError(t, svc.Delete(context.Background(), "never-existed"))
}

func TestMutationsAreAudited(t *testing.T) {
	svc, m, wp := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.BankAccount{Name: ptr("A")})
	require.NoError(t, err)
	_, err = svc.Replace(ctx, models.BankAccount{ID: created.ID, Name: ptr("B")})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	// drain the pool so every queued audit write has landed
	wp.Stop()

	entries := m.AuditLogs.Entries()
	require.Len(t, entries, 3)
	var actions []string
	for _, e := range entries {
		require.Equal(t, "bankAccount", e.EntityType)
		require.Equal(t, created.ID, e.EntityID)
		actions = append(actions, e.Action)
	}
	require.ElementsMatch(t, []string{"create", "replace", "delete"}, actions)
}
