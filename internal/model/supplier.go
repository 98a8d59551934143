package model

import "time"

// Supplier is a purchasing counterparty, keyed by its unique name.
// Name uniqueness is scoped to non-deleted rows via a partial unique index
// (see infra.applySchemaPatches), so a soft-deleted name may be reused.
type Supplier struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"index;not null"`
	Contact   *string
	Address   *string
	Deleted   bool `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders []Order `gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string { return "suppliers" }
