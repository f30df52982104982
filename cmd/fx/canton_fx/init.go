package canton_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"legendscr/internal/repositories"
	"legendscr/internal/services"
	"legendscr/pkg/metrics"
)

var Module = fx.Provide(
	NewCantonService, NewCantonRepo)

func NewCantonService(repo repositories.CantonRepository) services.CantonServiceInterface {
	return services.NewCantonService(repo)
}

func NewCantonRepo(db *gorm.DB, m *metrics.Metrics) repositories.CantonRepository {
	return repositories.NewCantonRepository(db, m)
}
