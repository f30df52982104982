package config_fx

import (
	"go.uber.org/fx"

	"legendscr/internal/config"
)

var Module = fx.Provide(
	config.Load,
	provideServerConfig,
	provideDatabaseConfig)

func provideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}

func provideDatabaseConfig(cfg *config.Config) config.DatabaseConfig {
	return cfg.Database
}
