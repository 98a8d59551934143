package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a purchasable good. Price is the item's current list price and may
// be nil (unpriced); orders snapshot their own price at creation time and
// never read it back from here.
type Item struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"index;not null"`
	Description *string
	Price       *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Deleted     bool             `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Orders []Order `gorm:"foreignKey:ItemID"`
}

func (Item) TableName() string { return "items" }
