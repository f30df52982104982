package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"legendscr/internal/infra"
	"legendscr/internal/models/db_models"
	"legendscr/pkg/metrics"
)

type DistrictRepository interface {
	GetAll(ctx context.Context) ([]db_models.District, error)
	GetByID(ctx context.Context, id int) (*db_models.District, error)
	GetByCantonName(ctx context.Context, cantonName string) ([]db_models.District, error)
	GetByCantonID(ctx context.Context, cantonID int) ([]db_models.District, error)
}

type districtRepository struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

func NewDistrictRepository(db *gorm.DB, m *metrics.Metrics) DistrictRepository {
	return &districtRepository{db: db, metrics: m}
}

func (r *districtRepository) GetAll(ctx context.Context) (districts []db_models.District, err error) {
	defer func() { r.metrics.ObserveQuery("district", "list", outcomeOf(err)) }()

	if err = r.db.WithContext(ctx).Order("id").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *districtRepository) GetByID(ctx context.Context, id int) (_ *db_models.District, err error) {
	defer func() { r.metrics.ObserveQuery("district", "by_id", outcomeOf(err)) }()

	var district db_models.District
	if err = r.db.WithContext(ctx).First(&district, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, msgDistrictNotFound+".")
	}
	return &district, nil
}

func (r *districtRepository) GetByCantonName(ctx context.Context, cantonName string) (_ []db_models.District, err error) {
	defer func() { r.metrics.ObserveQuery("district", "by_canton_name", outcomeOf(err)) }()

	name := strings.TrimSpace(cantonName)
	return r.byCanton(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where(byName, name)
	})
}

func (r *districtRepository) GetByCantonID(ctx context.Context, cantonID int) (_ []db_models.District, err error) {
	defer func() { r.metrics.ObserveQuery("district", "by_canton_id", outcomeOf(err)) }()

	return r.byCanton(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", cantonID)
	})
}

func (r *districtRepository) byCanton(ctx context.Context, match func(*gorm.DB) *gorm.DB) ([]db_models.District, error) {
	var districts []db_models.District

	err := infra.RunInTx(ctx, r.db, func(tx *gorm.DB) error {
		var canton db_models.Canton
		if err := match(tx.Select("id")).First(&canton).Error; err != nil {
			return notFoundAs(err, msgCantonNotFound)
		}
		return tx.Where("canton_id = ?", canton.ID).Order("id").Find(&districts).Error
	})
	if err != nil {
		return nil, parentLookupErr(err)
	}
	if districts == nil {
		districts = []db_models.District{}
	}
	return districts, nil
}
