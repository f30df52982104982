package repositories

import (
	"context"

	"gorm.io/gorm"

	"legendscr/internal/models/db_models"
	"legendscr/pkg/metrics"
)

type ProvinceRepository interface {
	GetAll(ctx context.Context) ([]db_models.Province, error)
	GetByID(ctx context.Context, id int) (*db_models.Province, error)
}

type provinceRepository struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

func NewProvinceRepository(db *gorm.DB, m *metrics.Metrics) ProvinceRepository {
	return &provinceRepository{db: db, metrics: m}
}

func (p *provinceRepository) GetAll(ctx context.Context) (provinces []db_models.Province, err error) {
	defer func() { p.metrics.ObserveQuery("province", "list", outcomeOf(err)) }()

	if err = p.db.WithContext(ctx).Order("id").Find(&provinces).Error; err != nil {
		return nil, err
	}
	return provinces, nil
}

// GetByID returns a NotFound ServiceError when no row matches; other failures
// are returned as-is.
func (p *provinceRepository) GetByID(ctx context.Context, id int) (_ *db_models.Province, err error) {
	defer func() { p.metrics.ObserveQuery("province", "by_id", outcomeOf(err)) }()

	var province db_models.Province
	if err = p.db.WithContext(ctx).First(&province, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, msgProvinceNotFound+".")
	}
	return &province, nil
}
