package controllers_fx

import (
	"go.uber.org/fx"

	"legendscr/internal/api"
	"legendscr/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewProvincesController),
	fx.Provide(controllers.NewCantonsController),
	fx.Provide(controllers.NewDistrictsController),
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewLegendsController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideControllers))

type params struct {
	fx.In

	Provinces  *controllers.ProvincesController
	Cantons    *controllers.CantonsController
	Districts  *controllers.DistrictsController
	Categories *controllers.CategoriesController
	Legends    *controllers.LegendsController
	Health     *controllers.HealthController
}

func provideControllers(p params) api.Controllers {
	return api.Controllers{
		Provinces:  p.Provinces,
		Cantons:    p.Cantons,
		Districts:  p.Districts,
		Categories: p.Categories,
		Legends:    p.Legends,
		Health:     p.Health,
	}
}
