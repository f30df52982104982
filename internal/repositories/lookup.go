package repositories

import (
	"errors"

	"gorm.io/gorm"

	"legendscr/pkg/metrics"
	"legendscr/pkg/utils"
)

// Messages returned when a looked-up row is missing.
const (
	msgProvinceNotFound   = "La provincia no existe en la base de datos"
	msgCantonNotFound     = "El cantón no existe en la base de datos"
	msgDistrictNotFound   = "El distrito no existe en la base de datos"
	msgCategoryNotFound   = "La categoría no existe en la base de datos"
	msgLegendNotFoundByID = "La leyenda no existe en la base de datos."
)

// byName matches a trimmed, case-insensitive name on both sides.
const byName = "LOWER(TRIM(name)) = LOWER(?)"

// notFoundAs maps gorm's missing-row error to a NotFound with msg. Anything
// else is returned untouched for the caller's catch-all.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(msg)
	}
	return err
}

// parentLookupErr keeps ServiceErrors raised inside a parent lookup and turns
// any other failure into a query error.
func parentLookupErr(err error) error {
	if _, ok := utils.AsServiceError(err); ok {
		return err
	}
	return utils.QueryFailed(err)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, utils.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
