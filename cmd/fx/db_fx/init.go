package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"legendscr/internal/config"
	"legendscr/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB migrates first when asked to, so repositories never see a
// half-built schema.
func provideDB(lc fx.Lifecycle, cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()

	if cfg.MigrateOnStart {
		if err := infra.Migrate(ctx, cfg.URL, log); err != nil {
			return nil, err
		}
	}

	db, err := infra.OpenPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return infra.ClosePostgres(db, log)
		},
	})
	return db, nil
}
