package request_models

// CreateLegendRequest is the body of POST /legends/. Every field is required.
type CreateLegendRequest struct {
	CategoryID  int    `json:"categoryId" binding:"required,gt=0"`
	DistrictID  int    `json:"districtId" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required,max=500"`
	Date        Date   `json:"date" binding:"required"`
}
