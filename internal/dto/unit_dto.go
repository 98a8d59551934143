package dto

type CreateUnitRequest struct {
	Name        string  `json:"name"        validate:"required,min=1"`
	Description *string `json:"description"`
}

type UnitResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type UnitView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
