package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/agencyhub-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Client{},
		&domain.Project{},
		&domain.Payment{},
		&domain.Activity{},
	)
}

// EnsureIndexes adds the composite indexes the list and dashboard queries lean on.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"idx_client_owner_created", `CREATE INDEX IF NOT EXISTS idx_client_owner_created ON client (owner_id, created_at DESC);`},
		{"idx_project_client_created", `CREATE INDEX IF NOT EXISTS idx_project_client_created ON project (client_id, created_at DESC);`},
		{"idx_payment_owner_status", `CREATE INDEX IF NOT EXISTS idx_payment_owner_status ON payment (owner_id, status, paid_date);`},
	}
	for _, s := range stmts {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
	}
	return nil
}
