package repositories

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legendscr/internal/models/db_models"
	"legendscr/internal/testdb"
	"legendscr/pkg/metrics"
	"legendscr/pkg/utils"
)

const (
	selectProvinces      = `SELECT \* FROM "provinces" ORDER BY id`
	selectProvinceByID   = `SELECT \* FROM "provinces" WHERE id = \$1`
	selectProvinceIDOnly = `SELECT "id" FROM "provinces" WHERE`
	selectCantonByID     = `SELECT \* FROM "cantons" WHERE id = \$1`
	selectCantonIDOnly   = `SELECT "id" FROM "cantons" WHERE`
	selectCantonsByProv  = `SELECT \* FROM "cantons" WHERE province_id = \$1 ORDER BY id`
	selectDistrictsByCan = `SELECT \* FROM "districts" WHERE canton_id = \$1 ORDER BY id`
)

func requireServiceError(t *testing.T, err error, status int, message string) {
	t.Helper()
	se, ok := utils.AsServiceError(err)
	require.True(t, ok, "expected ServiceError, got %v", err)
	assert.Equal(t, status, se.Status)
	assert.Equal(t, message, se.Message)
}

// observed reads legends_db_queries_total for one label set.
func observed(t *testing.T, m *metrics.Metrics, entity, operation, outcome string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "legends_db_queries_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["entity"] == entity && labels["operation"] == operation && labels["outcome"] == outcome {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func cantonRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "province_id"})
}

func TestProvinceRepository_GetAll(t *testing.T) {
	db, mock := testdb.NewMock(t)
	m := metrics.New()
	repo := NewProvinceRepository(db, m)

	mock.ExpectQuery(selectProvinces).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "San José").
			AddRow(2, "Alajuela"))

	provinces, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []db_models.Province{{ID: 1, Name: "San José"}, {ID: 2, Name: "Alajuela"}}, provinces)
	assert.Equal(t, float64(1), observed(t, m, "province", "list", metrics.OutcomeOK))
}

func TestProvinceRepository_GetAllPropagatesFailure(t *testing.T) {
	db, mock := testdb.NewMock(t)
	repo := NewProvinceRepository(db, nil)

	boom := errors.New("connection reset by peer")
	mock.ExpectQuery(selectProvinces).WillReturnError(boom)

	_, err := repo.GetAll(context.Background())
	assert.ErrorIs(t, err, boom)
	_, isServiceErr := utils.AsServiceError(err)
	assert.False(t, isServiceErr)
}

func TestProvinceRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewProvinceRepository(db, nil)

		mock.ExpectQuery(selectProvinceByID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Cartago"))

		province, err := repo.GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, &db_models.Province{ID: 3, Name: "Cartago"}, province)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		m := metrics.New()
		repo := NewProvinceRepository(db, m)

		mock.ExpectQuery(selectProvinceByID).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		province, err := repo.GetByID(context.Background(), 99)
		assert.Nil(t, province)
		requireServiceError(t, err, http.StatusNotFound, "La provincia no existe en la base de datos.")
		assert.Equal(t, float64(1), observed(t, m, "province", "by_id", metrics.OutcomeNotFound))
	})

	t.Run("failure is not caught", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewProvinceRepository(db, nil)

		boom := errors.New("too many connections")
		mock.ExpectQuery(selectProvinceByID).WillReturnError(boom)

		_, err := repo.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, boom)
		_, isServiceErr := utils.AsServiceError(err)
		assert.False(t, isServiceErr)
	})
}

func TestCantonRepository_GetByProvinceID(t *testing.T) {
	t.Run("lists children in order", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewCantonRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(selectProvinceIDOnly + ` id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(selectCantonsByProv).
			WillReturnRows(cantonRows().AddRow(10, "Escazú", 1).AddRow(11, "Mora", 1))
		mock.ExpectCommit()

		cantons, err := repo.GetByProvinceID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []db_models.Canton{
			{ID: 10, Name: "Escazú", ProvinceID: 1},
			{ID: 11, Name: "Mora", ProvinceID: 1},
		}, cantons)
	})

	t.Run("missing province skips child query", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		m := metrics.New()
		repo := NewCantonRepository(db, m)

		mock.ExpectBegin()
		mock.ExpectQuery(selectProvinceIDOnly).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		cantons, err := repo.GetByProvinceID(context.Background(), 99)
		assert.Nil(t, cantons)
		requireServiceError(t, err, http.StatusNotFound, "La provincia no existe en la base de datos")
		assert.Equal(t, float64(1), observed(t, m, "canton", "by_province_id", metrics.OutcomeNotFound))
	})

	t.Run("province without cantons is an empty list", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewCantonRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(selectProvinceIDOnly).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery(selectCantonsByProv).WillReturnRows(cantonRows())
		mock.ExpectCommit()

		cantons, err := repo.GetByProvinceID(context.Background(), 7)
		require.NoError(t, err)
		assert.NotNil(t, cantons)
		assert.Empty(t, cantons)
	})
}

func TestCantonRepository_GetByProvinceName(t *testing.T) {
	t.Run("matches trimmed case-insensitive name", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewCantonRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(selectProvinceIDOnly + ` LOWER\(TRIM\(name\)\) = LOWER\(\$1\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(selectCantonsByProv).
			WillReturnRows(cantonRows().AddRow(10, "Escazú", 1))
		mock.ExpectCommit()

		cantons, err := repo.GetByProvinceName(context.Background(), "  san josé ")
		require.NoError(t, err)
		require.Len(t, cantons, 1)
		assert.Equal(t, 1, cantons[0].ProvinceID)
	})

	t.Run("unknown province", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewCantonRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(selectProvinceIDOnly).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := repo.GetByProvinceName(context.Background(), "Atlantis")
		requireServiceError(t, err, http.StatusNotFound, "La provincia no existe en la base de datos")
	})

	t.Run("query failure becomes a 500 marker", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		m := metrics.New()
		repo := NewCantonRepository(db, m)

		mock.ExpectBegin()
		mock.ExpectQuery(selectProvinceIDOnly).WillReturnError(errors.New(`relation "provinces" does not exist`))
		mock.ExpectRollback()

		_, err := repo.GetByProvinceName(context.Background(), "Cartago")
		requireServiceError(t, err, http.StatusInternalServerError, `Error en la consulta: relation "provinces" does not exist`)
		assert.Equal(t, float64(1), observed(t, m, "canton", "by_province_name", metrics.OutcomeError))
	})

	t.Run("begin failure becomes a 500 marker", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewCantonRepository(db, nil)

		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		_, err := repo.GetByProvinceName(context.Background(), "Cartago")
		requireServiceError(t, err, http.StatusInternalServerError, "Error en la consulta: pool exhausted")
	})
}

func TestCantonRepository_GetByID(t *testing.T) {
	db, mock := testdb.NewMock(t)
	repo := NewCantonRepository(db, nil)

	mock.ExpectQuery(selectCantonByID).WillReturnRows(cantonRows())

	_, err := repo.GetByID(context.Background(), 404)
	requireServiceError(t, err, http.StatusNotFound, "El cantón no existe en la base de datos.")
}

func TestDistrictRepository_GetByCanton(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewDistrictRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(selectCantonIDOnly + ` id = \$1`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectQuery(selectDistrictsByCan).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "canton_id"}).
				AddRow(100, "Escazú", 10).
				AddRow(101, "San Antonio", 10).
				AddRow(102, "San Rafael", 10))
		mock.ExpectCommit()

		districts, err := repo.GetByCantonID(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, districts, 3)
		for _, d := range districts {
			assert.Equal(t, 10, d.CantonID)
		}
	})

	t.Run("unknown canton name", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewDistrictRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(selectCantonIDOnly + ` LOWER\(TRIM\(name\)\) = LOWER\(\$1\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := repo.GetByCantonName(context.Background(), "Gotham")
		requireServiceError(t, err, http.StatusNotFound, "El cantón no existe en la base de datos")
	})

	t.Run("missing district by id", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewDistrictRepository(db, nil)

		mock.ExpectQuery(`SELECT \* FROM "districts" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "canton_id"}))

		_, err := repo.GetByID(context.Background(), 1)
		requireServiceError(t, err, http.StatusNotFound, "El distrito no existe en la base de datos.")
	})
}

func TestCategoryRepository_GetAll(t *testing.T) {
	db, mock := testdb.NewMock(t)
	repo := NewCategoryRepository(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Apariciones"))

	categories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []db_models.Category{{ID: 1, Name: "Apariciones"}}, categories)
}

func newLegend() *db_models.Legend {
	url := "https://img.test/cegua.png"
	date := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	return &db_models.Legend{
		ID:          "2b0c7e0a-0f7e-4e43-9a55-6ad7d1c1f0a1",
		CategoryID:  2,
		DistrictID:  100,
		Name:        "La Cegua",
		Description: "Mujer con cabeza de caballo.",
		ImageURL:    &url,
		Date:        &date,
		IsActive:    true,
	}
}

func TestLegendRepository_Create(t *testing.T) {
	t.Run("inserts after both parents resolve", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewLegendRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT "id" FROM "categories" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectQuery(`SELECT "id" FROM "districts" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
		mock.ExpectExec(`INSERT INTO "legends"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(context.Background(), newLegend()))
	})

	t.Run("unknown category", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewLegendRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT "id" FROM "categories" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), newLegend())
		requireServiceError(t, err, http.StatusNotFound, "La categoría no existe en la base de datos")
	})

	t.Run("unknown district", func(t *testing.T) {
		db, mock := testdb.NewMock(t)
		repo := NewLegendRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT "id" FROM "categories" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectQuery(`SELECT "id" FROM "districts" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), newLegend())
		requireServiceError(t, err, http.StatusNotFound, "El distrito no existe en la base de datos")
	})
}

func TestLegendRepository_GetByDistrictID(t *testing.T) {
	db, mock := testdb.NewMock(t)
	repo := NewLegendRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "districts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery(`SELECT \* FROM "legends" WHERE district_id = \$1 ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "district_id", "name", "description", "image_url", "date", "is_active"}).
			AddRow("2b0c7e0a-0f7e-4e43-9a55-6ad7d1c1f0a1", 2, 100, "La Cegua", "Mujer con cabeza de caballo.", nil, nil, true))
	mock.ExpectCommit()

	legends, err := repo.GetByDistrictID(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, legends, 1)
	assert.Nil(t, legends[0].ImageURL)
	assert.True(t, legends[0].IsActive)
}

func TestLegendRepository_GetByIDMissing(t *testing.T) {
	db, mock := testdb.NewMock(t)
	repo := NewLegendRepository(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "legends" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "2b0c7e0a-0f7e-4e43-9a55-6ad7d1c1f0a1")
	requireServiceError(t, err, http.StatusNotFound, "La leyenda no existe en la base de datos.")
}
