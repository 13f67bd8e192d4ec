package memory

import (
	"context"
	"sync"
	"time"

	"swarmdeck/internal/domain/ops"

	"github.com/google/uuid"
)

type AuditEntry struct {
	ID         string
	Command    ops.Command
	Accepted   bool
	RecordedAt time.Time
}

type AuditRepo struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

func (r *AuditRepo) Record(_ context.Context, cmd ops.Command, accepted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, AuditEntry{
		ID:         uuid.NewString(),
		Command:    cmd,
		Accepted:   accepted,
		RecordedAt: time.Now(),
	})
	return nil
}

// Entries returns a copy of the audit log, newest last.
func (r *AuditRepo) Entries() []AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
