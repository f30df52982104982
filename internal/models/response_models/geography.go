package response_models

type ProvinceResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CantonResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ProvinceID int    `json:"provinceId"`
}

type DistrictResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	CantonID int    `json:"cantonId"`
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
