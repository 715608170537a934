package models

import "math"

// PaginationParams carries paging and ordering of a submission listing.
type PaginationParams struct {
	Page   int    `json:"page" query:"page" validate:"omitempty,min=1"`
	Limit  int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=500"`
	SortBy string `json:"sortBy" query:"sortBy"`
	Order  string `json:"order" query:"order" validate:"omitempty,oneof=asc desc"`
}

// PaginatedResponse is the paged response envelope.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  50,
		SortBy: "submitted_at",
		Order:  "desc",
	}
}

func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetOffset returns the number of rows to skip for the current page.
func (p *PaginationParams) GetOffset() int {
	return (p.Page - 1) * p.Limit
}
