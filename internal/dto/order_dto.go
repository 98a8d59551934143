package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateOrderRequest creates an order against already-known entity ids.
// Price/Total are recorded as given — the store never recomputes them.
type CreateOrderRequest struct {
	SupplierID    uint            `json:"supplier_id"    validate:"required"`
	ItemID        uint            `json:"item_id"        validate:"required"`
	UnitID        uint            `json:"unit_id"        validate:"required"`
	Quantity      decimal.Decimal `json:"quantity"       validate:"min=0"`
	Price         decimal.Decimal `json:"price"`
	Total         decimal.Decimal `json:"total"`
	PaymentCycle  string          `json:"payment_cycle"`
	PaymentMethod string          `json:"payment_method"`
	Client        string          `json:"client"`
	Notes         *string         `json:"notes"`
	Date          *string         `json:"date"` // YYYY-MM-DD
}

// OrderByNameRequest creates or updates an order keyed by the natural-key
// triple; each name is resolved to an existing non-deleted entity or a new
// one. Contact/ItemPrice seed a newly created supplier/item and are ignored
// when the name already resolves.
type OrderByNameRequest struct {
	SupplierName    string           `json:"supplier_name"    validate:"required,min=1"`
	ItemName        string           `json:"item_name"        validate:"required,min=1"`
	UnitName        string           `json:"unit_name"        validate:"required,min=1"`
	SupplierContact *string          `json:"supplier_contact"`
	ItemPrice       *decimal.Decimal `json:"item_price"       validate:"omitempty,min=0"`
	Quantity        decimal.Decimal  `json:"quantity"         validate:"min=0"`
	Price           decimal.Decimal  `json:"price"`
	Total           decimal.Decimal  `json:"total"`
	PaymentCycle    string           `json:"payment_cycle"`
	PaymentMethod   string           `json:"payment_method"`
	Client          string           `json:"client"`
	Notes           *string          `json:"notes"`
	Date            *string          `json:"date"`
}

type BulkDeleteRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1,dive,required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// OrderView is the externally visible order shape. Sub-objects are either the
// live entity or the `{id:-1, name:"[deleted]"}` placeholder when the
// referenced row was soft-deleted.
type OrderView struct {
	ID            uint            `json:"id"`
	Supplier      SupplierView    `json:"supplier"`
	Item          ItemView        `json:"item"`
	Unit          UnitView        `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Total         decimal.Decimal `json:"total"`
	PaymentCycle  string          `json:"payment_cycle"`
	PaymentMethod string          `json:"payment_method"`
	Client        string          `json:"client"`
	Notes         *string         `json:"notes"`
	Date          *string         `json:"date"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
