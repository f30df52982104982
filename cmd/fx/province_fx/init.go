package province_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"legendscr/internal/repositories"
	"legendscr/internal/services"
	"legendscr/pkg/metrics"
)

var Module = fx.Provide(
	NewProvinceService, NewProvinceRepo)

func NewProvinceService(repo repositories.ProvinceRepository) services.ProvinceServiceInterface {
	return services.NewProvinceService(repo)
}

func NewProvinceRepo(db *gorm.DB, m *metrics.Metrics) repositories.ProvinceRepository {
	return repositories.NewProvinceRepository(db, m)
}
