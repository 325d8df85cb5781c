package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ahmadalarjah/crypto-admin/internal/config"
)

type Store struct {
	DB *gorm.DB
}

// NewStore connects to postgres when POSTGRES_DSN is set; otherwise the
// gateway runs without an audit trail.
func NewStore(cfg config.Config) (*Store, error) {
	if cfg.PostgresDSN == "" {
		log.Printf("POSTGRES_DSN not set; starting without the request audit trail.")
		return &Store{DB: nil}, nil
	}

	gdb, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := gdb.AutoMigrate(&AuditEntryModel{}); err != nil {
		return nil, fmt.Errorf("migrate audit schema: %w", err)
	}

	return &Store{DB: gdb}, nil
}
