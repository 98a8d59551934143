package infra

import (
	"fmt"

	"github.com/gyeongmo89/samsip/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (the partial unique indexes backing name uniqueness).
//
// TranslateError is enabled so that unique-constraint violations surface as
// gorm.ErrDuplicatedKey — the resolver and the direct create paths depend on
// that to report conflicts instead of opaque driver errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Supplier{},
		&model.Item{},
		&model.Unit{},
		&model.Order{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
//
// Name uniqueness must hold only among non-deleted rows — a soft-deleted
// supplier's name may be reused by a new row — so a plain UNIQUE constraint
// is wrong. Partial unique indexes encode the intended rule and act as the
// backstop when two concurrent requests race to create the same name.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uni_suppliers_name_live ON suppliers (name) WHERE NOT is_deleted`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uni_items_name_live ON items (name) WHERE NOT is_deleted`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uni_units_name_live ON units (name) WHERE NOT is_deleted`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

// RunMigrations applies the full schema for integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Supplier{},
		&model.Item{},
		&model.Unit{},
		&model.Order{},
	); err != nil {
		return err
	}
	return applySchemaPatches(db)
}
