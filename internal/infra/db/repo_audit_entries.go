package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

var errDBUnavailable = errors.New("database unavailable")

type AuditEntryRepository struct {
	db *gorm.DB
}

func NewAuditEntryRepository(db *gorm.DB) *AuditEntryRepository {
	return &AuditEntryRepository{db: db}
}

func (r *AuditEntryRepository) Append(ctx context.Context, entry domain.AuditEntry) error {
	if r == nil || r.db == nil {
		return errDBUnavailable
	}
	if entry.ID == "" {
		return errors.New("audit entry id is required")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	model := AuditEntryModel{
		ID:         entry.ID,
		Method:     entry.Method,
		Path:       entry.Path,
		Query:      entry.Query,
		Status:     entry.Status,
		LatencyMS:  entry.LatencyMS,
		RequestID:  entry.RequestID,
		Authorized: entry.Authorized,
		CreatedAt:  entry.CreatedAt.UTC().Truncate(time.Microsecond),
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *AuditEntryRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if r == nil || r.db == nil {
		return nil, errDBUnavailable
	}
	if limit <= 0 {
		limit = 100
	}
	var models []AuditEntryModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entries := make([]domain.AuditEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, domain.AuditEntry{
			ID:         m.ID,
			Method:     m.Method,
			Path:       m.Path,
			Query:      m.Query,
			Status:     m.Status,
			LatencyMS:  m.LatencyMS,
			RequestID:  m.RequestID,
			Authorized: m.Authorized,
			CreatedAt:  m.CreatedAt,
		})
	}
	return entries, nil
}
