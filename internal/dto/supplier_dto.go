package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSupplierRequest struct {
	Name    string  `json:"name"    validate:"required,min=1"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

// SupplierView is the order-projection sub-object. ID is signed so the
// deleted-reference placeholder can carry -1.
type SupplierView struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}
