package repositories

import (
	"context"

	"gorm.io/gorm"

	"legendscr/internal/infra"
	"legendscr/internal/models/db_models"
	"legendscr/pkg/metrics"
)

type LegendRepository interface {
	GetAll(ctx context.Context) ([]db_models.Legend, error)
	GetByID(ctx context.Context, id string) (*db_models.Legend, error)
	GetByDistrictID(ctx context.Context, districtID int) ([]db_models.Legend, error)
	Create(ctx context.Context, legend *db_models.Legend) error
}

type legendRepository struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

func NewLegendRepository(db *gorm.DB, m *metrics.Metrics) LegendRepository {
	return &legendRepository{db: db, metrics: m}
}

func (r *legendRepository) GetAll(ctx context.Context) (legends []db_models.Legend, err error) {
	defer func() { r.metrics.ObserveQuery("legend", "list", outcomeOf(err)) }()

	if err = r.db.WithContext(ctx).Order("name").Find(&legends).Error; err != nil {
		return nil, err
	}
	return legends, nil
}

func (r *legendRepository) GetByID(ctx context.Context, id string) (_ *db_models.Legend, err error) {
	defer func() { r.metrics.ObserveQuery("legend", "by_id", outcomeOf(err)) }()

	var legend db_models.Legend
	if err = r.db.WithContext(ctx).First(&legend, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, msgLegendNotFoundByID)
	}
	return &legend, nil
}

func (r *legendRepository) GetByDistrictID(ctx context.Context, districtID int) (_ []db_models.Legend, err error) {
	defer func() { r.metrics.ObserveQuery("legend", "by_district_id", outcomeOf(err)) }()

	var legends []db_models.Legend
	err = infra.RunInTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := exists(tx, &db_models.District{}, districtID, msgDistrictNotFound); err != nil {
			return err
		}
		return tx.Where("district_id = ?", districtID).Order("name").Find(&legends).Error
	})
	if err != nil {
		return nil, parentLookupErr(err)
	}
	if legends == nil {
		legends = []db_models.Legend{}
	}
	return legends, nil
}

// Create inserts legend after checking that its category and district exist.
func (r *legendRepository) Create(ctx context.Context, legend *db_models.Legend) (err error) {
	defer func() { r.metrics.ObserveQuery("legend", "create", outcomeOf(err)) }()

	err = infra.RunInTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := exists(tx, &db_models.Category{}, legend.CategoryID, msgCategoryNotFound); err != nil {
			return err
		}
		if err := exists(tx, &db_models.District{}, legend.DistrictID, msgDistrictNotFound); err != nil {
			return err
		}
		return tx.Create(legend).Error
	})
	if err != nil {
		return parentLookupErr(err)
	}
	return nil
}

// exists loads only the id of model's row with the given id.
func exists(tx *gorm.DB, model interface{}, id int, msg string) error {
	if err := tx.Select("id").First(model, "id = ?", id).Error; err != nil {
		return notFoundAs(err, msg)
	}
	return nil
}
