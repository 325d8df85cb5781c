// Package audit records forwarded admin requests. Recording is
// best-effort: a failed append is logged and never fails the proxied
// request.
package audit

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

type Repository interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
}

type Recorder struct {
	Repo Repository
	Now  func() time.Time
}

func NewRecorder(repo Repository) *Recorder {
	return &Recorder{Repo: repo, Now: time.Now}
}

// Record fills in id and timestamp and appends the entry. A nil
// recorder or repository is a no-op so callers never need to guard.
func (r *Recorder) Record(ctx context.Context, entry domain.AuditEntry) {
	if r == nil || r.Repo == nil {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}
	if err := r.Repo.Append(ctx, entry); err != nil {
		log.Printf("audit append failed for %s %s: %v", entry.Method, entry.Path, err)
	}
}

func (r *Recorder) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
