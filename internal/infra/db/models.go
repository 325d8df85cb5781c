package db

import "time"

type AuditEntryModel struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Method     string    `gorm:"not null"`
	Path       string    `gorm:"index;not null"`
	Query      string
	Status     int       `gorm:"index;not null"`
	LatencyMS  int64     `gorm:"not null"`
	RequestID  string    `gorm:"index"`
	Authorized bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"index;not null"`
}

func (AuditEntryModel) TableName() string { return "audit_entries" }
