package postgres

import (
	repo "github.com/baharkarakas/bank-accounts-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	BankAccounts repo.BankAccounts
	AuditLogs    repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		BankAccounts: &bankAccountsRepo{pool},
		AuditLogs:    &auditLogsRepo{pool},
	}
}
