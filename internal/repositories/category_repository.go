package repositories

import (
	"context"

	"gorm.io/gorm"

	"legendscr/internal/models/db_models"
	"legendscr/pkg/metrics"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]db_models.Category, error)
}

type categoryRepository struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

func NewCategoryRepository(db *gorm.DB, m *metrics.Metrics) CategoryRepository {
	return &categoryRepository{db: db, metrics: m}
}

func (r *categoryRepository) GetAll(ctx context.Context) (categories []db_models.Category, err error) {
	defer func() { r.metrics.ObserveQuery("category", "list", outcomeOf(err)) }()

	if err = r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
