package dto

import "github.com/shopspring/decimal"

type CreateItemRequest struct {
	Name        string           `json:"name"        validate:"required,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,min=0"`
}

type ItemResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

type ItemView struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}
