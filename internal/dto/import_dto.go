package dto

import "github.com/shopspring/decimal"

// ImportResponse reports how many non-blank data rows became orders.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ─── Dashboard stats ─────────────────────────────────────────────────────────

type MonthlyStat struct {
	Month  string          `json:"month"`
	Orders int64           `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

type SupplierStat struct {
	Supplier string          `json:"supplier"`
	Orders   int64           `json:"orders"`
	Total    decimal.Decimal `json:"total"`
}

type StatsResponse struct {
	ByMonth    []MonthlyStat  `json:"by_month"`
	BySupplier []SupplierStat `json:"by_supplier"`
}
