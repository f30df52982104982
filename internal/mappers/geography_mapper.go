// Package mappers converts between persistence models and transport DTOs.
// Every string crossing a mapper is trimmed of surrounding whitespace.
package mappers

import (
	"strings"

	"legendscr/internal/models/db_models"
	"legendscr/internal/models/response_models"
)

func ProvinceToResponse(p db_models.Province) response_models.ProvinceResponse {
	return response_models.ProvinceResponse{
		ID:   p.ID,
		Name: strings.TrimSpace(p.Name),
	}
}

func ProvinceToModel(r response_models.ProvinceResponse) db_models.Province {
	return db_models.Province{
		ID:   r.ID,
		Name: strings.TrimSpace(r.Name),
	}
}

func CantonToResponse(c db_models.Canton) response_models.CantonResponse {
	return response_models.CantonResponse{
		ID:         c.ID,
		Name:       strings.TrimSpace(c.Name),
		ProvinceID: c.ProvinceID,
	}
}

func CantonToModel(r response_models.CantonResponse) db_models.Canton {
	return db_models.Canton{
		ID:         r.ID,
		Name:       strings.TrimSpace(r.Name),
		ProvinceID: r.ProvinceID,
	}
}

func DistrictToResponse(d db_models.District) response_models.DistrictResponse {
	return response_models.DistrictResponse{
		ID:       d.ID,
		Name:     strings.TrimSpace(d.Name),
		CantonID: d.CantonID,
	}
}

func DistrictToModel(r response_models.DistrictResponse) db_models.District {
	return db_models.District{
		ID:       r.ID,
		Name:     strings.TrimSpace(r.Name),
		CantonID: r.CantonID,
	}
}

func CategoryToResponse(c db_models.Category) response_models.CategoryResponse {
	return response_models.CategoryResponse{
		ID:   c.ID,
		Name: strings.TrimSpace(c.Name),
	}
}

// MapAll applies fn to every element. A nil or empty input yields an empty,
// non-nil slice so handlers serialize [] rather than null.
func MapAll[M any, R any](items []M, fn func(M) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
