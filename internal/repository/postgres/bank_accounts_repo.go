package postgres

import (
	"context"
	"errors"

	"github.com/baharkarakas/bank-accounts-api/internal/models"
	"github.com/baharkarakas/bank-accounts-api/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bankAccountsRepo struct{ pool *pgxpool.Pool }

func (r *bankAccountsRepo) Save(ctx context.Context, a models.BankAccount) (models.BankAccount, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bank_accounts (id, name, balance)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		    SET name = EXCLUDED.name,
		        balance = EXCLUDED.balance,
		        updated_at = now()
		 RETURNING id, name, balance, created_at, updated_at`,
		a.ID, a.Name, a.Balance,
	).Scan(&a.ID, &a.Name, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *bankAccountsRepo) GetByID(ctx context.Context, id string) (models.BankAccount, error) {
	var a models.BankAccount
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, balance, created_at, updated_at
		   FROM bank_accounts
		  WHERE id=$1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.BankAccount{}, repository.ErrNotFound
	}
	return a, err
}

func (r *bankAccountsRepo) List(ctx context.Context) ([]models.BankAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, balance, created_at, updated_at
		   FROM bank_accounts
		  ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BankAccount
	for rows.Next() {
		var a models.BankAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete ignores the affected row count: deleting an unknown id is a no-op.
func (r *bankAccountsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE id=$1`, id)
	return err
}
