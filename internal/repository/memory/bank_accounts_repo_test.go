package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/bank-accounts-api/internal/models"
	repo "github.com/baharkarakas/bank-accounts-api/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func TestSaveAssignsIDAndTimestamps(t *testing.T) {
	r := NewRepositories().BankAccounts
	ctx := context.Background()

	a, err := r.Save(ctx, models.BankAccount{Name: ptr("A")})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.False(t, a.CreatedAt.IsZero())
	require.False(t, a.UpdatedAt.IsZero())

	// resave keeps created_at
	b, err := r.Save(ctx, models.BankAccount{ID: a.ID, Name: ptr("B")})
	require.NoError(t, err)
	require.Equal(t, a.CreatedAt, b.CreatedAt)
}

func TestGetUnknownID(t *testing.T) {
	r := NewRepositories().BankAccounts

	_, err := r.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestStoredRecordsAreIsolated(t *testing.T) {
	r := NewRepositories().BankAccounts
	ctx := context.Background()

	a, err := r.Save(ctx, models.BankAccount{Name: ptr("A"), Balance: ptr(1.0)})
	require.NoError(t, err)

	// mutating the caller's copy must not leak into the store
	*a.Name = "mutated"
	*a.Balance = 99

	got, err := r.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "A", *got.Name)
	require.Equal(t, 1.0, *got.Balance)
}

func TestListOrderedByCreation(t *testing.T) {
	r := NewRepositories().BankAccounts
	ctx := context.Background()

	first, err := r.Save(ctx, models.BankAccount{Name: ptr("first")})
	require.NoError(t, err)
	_, err = r.Save(ctx, models.BankAccount{Name: ptr("second")})
	require.NoError(t, err)

	out, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, first.ID, out[0].ID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := NewRepositories().BankAccounts
	ctx := context.Background()

	a, err := r.Save(ctx, models.BankAccount{Name: ptr("A")})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, a.ID))
	require.NoError(t, r.Delete(ctx, a.ID))
	require.NoError(t, r.Delete(ctx, "never-existed"))

	_, err = r.GetByID(ctx, a.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
}
