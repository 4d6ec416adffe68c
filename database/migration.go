package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/skillsenselab/seahorse/logger"
)

// Migration describes a single GORM-based schema migration.
type Migration struct {
	ID          string
	Description string
	Up          func(*gorm.DB) error
}

// schemaMigration tracks applied migrations.
type schemaMigration struct {
	ID        string `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string { return "schema_migrations" }

// MigrationRunner applies migrations tracked in a schema_migrations table.
type MigrationRunner struct {
	db         *gorm.DB
	log        *logger.Logger
	migrations []Migration
}

// NewMigrationRunner creates a runner bound to the given database and logger.
func NewMigrationRunner(db *DB, log *logger.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:  db.Gorm,
		log: log.WithComponent("migration"),
	}
}

// Add registers a migration to be applied.
func (mr *MigrationRunner) Add(migration Migration) {
	mr.migrations = append(mr.migrations, migration)
}

// Run applies all pending migrations in registration order.
func (mr *MigrationRunner) Run() error {
	if err := mr.db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, migration := range mr.migrations {
		var count int64
		if err := mr.db.Model(&schemaMigration{}).
			Where("id = ?", migration.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			mr.log.Debug("Migration already applied", map[string]interface{}{
				"id": migration.ID,
			})
			continue
		}

		mr.log.Info("Applying migration", map[string]interface{}{
			"id":          migration.ID,
			"description": migration.Description,
		})

		if err := mr.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{ID: migration.ID, AppliedAt: time.Now()}).Error
		}); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", migration.ID, err)
		}
	}

	return nil
}
