package response_models

import "legendscr/internal/models/request_models"

type LegendResponse struct {
	ID          string               `json:"id"`
	CategoryID  int                  `json:"categoryId"`
	DistrictID  int                  `json:"districtId"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	ImageURL    *string              `json:"imageUrl"`
	Date        *request_models.Date `json:"date"`
	IsActive    bool                 `json:"is_active"`
}
