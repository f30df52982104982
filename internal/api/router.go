// Package api assembles the gin engine: middleware chain, routes and the
// envelope answer for unknown paths.
package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "legendscr/docs"
	"legendscr/internal/api/controllers"
	"legendscr/internal/config"
	"legendscr/pkg/metrics"
	"legendscr/pkg/middleware"
)

type Controllers struct {
	Provinces  *controllers.ProvincesController
	Cantons    *controllers.CantonsController
	Districts  *controllers.DistrictsController
	Categories *controllers.CategoriesController
	Legends    *controllers.LegendsController
	Health     *controllers.HealthController
}

func NewRouter(cfg config.ServerConfig, log *zap.Logger, m *metrics.Metrics, ctrl Controllers) *gin.Engine {
	gin.SetMode(cfg.Mode)

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.NoRoute(middleware.NotFound())

	RegisterRoutes(r, ctrl)

	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/healthz", ctrl.Health.Health)

	provinces := r.Group("/provinces")
	provinces.GET("/", ctrl.Provinces.GetAllProvinces)
	provinces.GET("/:province_id", ctrl.Provinces.GetProvinceByID)

	cantons := r.Group("/cantons")
	cantons.GET("/", ctrl.Cantons.GetAllCantons)
	cantons.GET("/:canton_id", ctrl.Cantons.GetCantonByID)
	cantons.GET("/by-province/:province_name", ctrl.Cantons.GetCantonsByProvinceName)
	cantons.GET("/by-province-id/:province_id", ctrl.Cantons.GetCantonsByProvinceID)

	districts := r.Group("/districts")
	districts.GET("/", ctrl.Districts.GetAllDistricts)
	districts.GET("/:district_id", ctrl.Districts.GetDistrictByID)
	districts.GET("/by-canton/:canton_name", ctrl.Districts.GetDistrictsByCantonName)
	districts.GET("/by-canton-id/:canton_id", ctrl.Districts.GetDistrictsByCantonID)

	categories := r.Group("/categories")
	categories.GET("/", ctrl.Categories.GetAllCategories)

	legends := r.Group("/legends")
	legends.GET("/", ctrl.Legends.GetAllLegends)
	legends.POST("/", ctrl.Legends.CreateLegend)
	legends.GET("/:legend_id", ctrl.Legends.GetLegendByID)
	legends.GET("/by-district-id/:district_id", ctrl.Legends.GetLegendsByDistrictID)
}
