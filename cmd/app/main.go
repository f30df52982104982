package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"legendscr/cmd/fx/canton_fx"
	"legendscr/cmd/fx/category_fx"
	"legendscr/cmd/fx/config_fx"
	"legendscr/cmd/fx/controllers_fx"
	"legendscr/cmd/fx/db_fx"
	"legendscr/cmd/fx/district_fx"
	"legendscr/cmd/fx/legend_fx"
	"legendscr/cmd/fx/logger_fx"
	"legendscr/cmd/fx/metrics_fx"
	"legendscr/cmd/fx/province_fx"
	"legendscr/internal/api"
	"legendscr/internal/config"
)

// @title LegendsCR API
// @version 1.0
// @description Costa Rican provinces, cantons, districts and their legends.
// @BasePath /
func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		province_fx.Module,
		canton_fx.Module,
		district_fx.Module,
		category_fx.Module,
		legend_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.ServerConfig, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
