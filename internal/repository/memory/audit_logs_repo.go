package memory

import (
	"context"
	"sync"
	"time"

	"github.com/baharkarakas/bank-accounts-api/internal/models"
	"github.com/google/uuid"
)

// AuditLogs keeps the written entries reachable so tests can assert on
// what was audited.
type AuditLogs struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

func (r *AuditLogs) Create(_ context.Context, l models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().UTC()
	r.logs = append(r.logs, l)
	return nil
}

func (r *AuditLogs) Entries() []models.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.AuditLog, len(r.logs))
	copy(out, r.logs)
	return out
}
