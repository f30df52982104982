package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"legendscr/internal/infra"
	"legendscr/internal/models/db_models"
	"legendscr/pkg/metrics"
)

type CantonRepository interface {
	GetAll(ctx context.Context) ([]db_models.Canton, error)
	GetByID(ctx context.Context, id int) (*db_models.Canton, error)
	GetByProvinceName(ctx context.Context, provinceName string) ([]db_models.Canton, error)
	GetByProvinceID(ctx context.Context, provinceID int) ([]db_models.Canton, error)
}

type cantonRepository struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

func NewCantonRepository(db *gorm.DB, m *metrics.Metrics) CantonRepository {
	return &cantonRepository{db: db, metrics: m}
}

func (r *cantonRepository) GetAll(ctx context.Context) (cantons []db_models.Canton, err error) {
	defer func() { r.metrics.ObserveQuery("canton", "list", outcomeOf(err)) }()

	if err = r.db.WithContext(ctx).Order("id").Find(&cantons).Error; err != nil {
		return nil, err
	}
	return cantons, nil
}

func (r *cantonRepository) GetByID(ctx context.Context, id int) (_ *db_models.Canton, err error) {
	defer func() { r.metrics.ObserveQuery("canton", "by_id", outcomeOf(err)) }()

	var canton db_models.Canton
	if err = r.db.WithContext(ctx).First(&canton, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, msgCantonNotFound+".")
	}
	return &canton, nil
}

func (r *cantonRepository) GetByProvinceName(ctx context.Context, provinceName string) (_ []db_models.Canton, err error) {
	defer func() { r.metrics.ObserveQuery("canton", "by_province_name", outcomeOf(err)) }()

	name := strings.TrimSpace(provinceName)
	return r.byProvince(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where(byName, name)
	})
}

func (r *cantonRepository) GetByProvinceID(ctx context.Context, provinceID int) (_ []db_models.Canton, err error) {
	defer func() { r.metrics.ObserveQuery("canton", "by_province_id", outcomeOf(err)) }()

	return r.byProvince(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", provinceID)
	})
}

// byProvince resolves the province selected by match and then loads its
// cantons. No canton query is issued when the province is missing.
func (r *cantonRepository) byProvince(ctx context.Context, match func(*gorm.DB) *gorm.DB) ([]db_models.Canton, error) {
	var cantons []db_models.Canton

	err := infra.RunInTx(ctx, r.db, func(tx *gorm.DB) error {
		var province db_models.Province
		if err := match(tx.Select("id")).First(&province).Error; err != nil {
			return notFoundAs(err, msgProvinceNotFound)
		}
		return tx.Where("province_id = ?", province.ID).Order("id").Find(&cantons).Error
	})
	if err != nil {
		return nil, parentLookupErr(err)
	}
	if cantons == nil {
		cantons = []db_models.Canton{}
	}
	return cantons, nil
}
