package category_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"legendscr/internal/repositories"
	"legendscr/internal/services"
	"legendscr/pkg/metrics"
)

var Module = fx.Provide(
	NewCategoryService, NewCategoryRepo)

func NewCategoryService(repo repositories.CategoryRepository) services.CategoryServiceInterface {
	return services.NewCategoryService(repo)
}

func NewCategoryRepo(db *gorm.DB, m *metrics.Metrics) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db, m)
}
