package legend_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"legendscr/internal/repositories"
	"legendscr/internal/services"
	"legendscr/pkg/metrics"
)

var Module = fx.Provide(
	NewLegendService, NewLegendRepo)

func NewLegendService(repo repositories.LegendRepository) services.LegendServiceInterface {
	return services.NewLegendService(repo)
}

func NewLegendRepo(db *gorm.DB, m *metrics.Metrics) repositories.LegendRepository {
	return repositories.NewLegendRepository(db, m)
}
