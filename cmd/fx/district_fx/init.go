package district_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"legendscr/internal/repositories"
	"legendscr/internal/services"
	"legendscr/pkg/metrics"
)

var Module = fx.Provide(
	NewDistrictService, NewDistrictRepo)

func NewDistrictService(repo repositories.DistrictRepository) services.DistrictServiceInterface {
	return services.NewDistrictService(repo)
}

func NewDistrictRepo(db *gorm.DB, m *metrics.Metrics) repositories.DistrictRepository {
	return repositories.NewDistrictRepository(db, m)
}
