package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is filled in when a request or spreadsheet row leaves
// the payment method blank.
const DefaultPaymentMethod = "bank transfer"

// Order is a purchase order line. Supplier/Item/Unit are referenced by id and
// the foreign keys are kept even after the referenced row is soft-deleted;
// the projection layer substitutes placeholders when rendering.
//
// Price is a point-in-time snapshot taken when the order was recorded — it is
// never recomputed from the Item's current price. Total is supplied by the
// caller (expected quantity x price, not enforced).
type Order struct {
	ID            uint            `gorm:"primaryKey"`
	SupplierID    uint            `gorm:"index;not null"`
	ItemID        uint            `gorm:"index;not null"`
	UnitID        uint            `gorm:"index;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaymentCycle  string
	PaymentMethod string `gorm:"not null;default:'bank transfer'"`
	Client        string
	Notes         *string
	Date          *time.Time `gorm:"type:date"`
	Deleted       bool       `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
	Item     *Item     `gorm:"foreignKey:ItemID"`
	Unit     *Unit     `gorm:"foreignKey:UnitID"`
}

func (Order) TableName() string { return "orders" }
