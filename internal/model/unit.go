package model

import "time"

// Unit is a unit of measure (box, kg, ea...).
type Unit struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"index;not null"`
	Description *string
	Deleted     bool `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Orders []Order `gorm:"foreignKey:UnitID"`
}

func (Unit) TableName() string { return "units" }
