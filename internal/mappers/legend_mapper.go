package mappers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"legendscr/internal/models/db_models"
	"legendscr/internal/models/request_models"
	"legendscr/internal/models/response_models"
)

func LegendToResponse(l db_models.Legend) response_models.LegendResponse {
	return response_models.LegendResponse{
		ID:          l.ID,
		CategoryID:  l.CategoryID,
		DistrictID:  l.DistrictID,
		Name:        strings.TrimSpace(l.Name),
		Description: strings.TrimSpace(l.Description),
		ImageURL:    trimPtr(l.ImageURL),
		Date:        toDate(l.Date),
		IsActive:    l.IsActive,
	}
}

func LegendToModel(r response_models.LegendResponse) db_models.Legend {
	return db_models.Legend{
		ID:          strings.TrimSpace(r.ID),
		CategoryID:  r.CategoryID,
		DistrictID:  r.DistrictID,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		ImageURL:    trimPtr(r.ImageURL),
		Date:        fromDate(r.Date),
		IsActive:    r.IsActive,
	}
}

// LegendCreateToModel assigns a fresh UUID and marks the legend active.
func LegendCreateToModel(req request_models.CreateLegendRequest) db_models.Legend {
	imageURL := strings.TrimSpace(req.ImageURL)
	date := req.Date.Time()
	return db_models.Legend{
		ID:          uuid.NewString(),
		CategoryID:  req.CategoryID,
		DistrictID:  req.DistrictID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    &imageURL,
		Date:        &date,
		IsActive:    true,
	}
}

func toDate(t *time.Time) *request_models.Date {
	if t == nil {
		return nil
	}
	d := request_models.Date(*t)
	return &d
}

func fromDate(d *request_models.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
