package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"legendscr/internal/config"
)

var configEnvVars = []string{
	"LEGENDS_CONFIG",
	"LEGENDS_SERVER__ADDR",
	"LEGENDS_SERVER__CORS_ORIGINS",
	"LEGENDS_LOG__LEVEL",
	"LEGENDS_DATABASE__URL",
	"LEGENDS_DATABASE__MAX_OPEN_CONNS",
	"LEGENDS_DATABASE__CONN_MAX_LIFETIME",
	"DATABASE_URL",
}

func clearConfigEnvVars() {
	for _, k := range configEnvVars {
		_ = os.Unsetenv(k)
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legends.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When no database url is configured", func() {
			cfg, err := config.Load()

			convey.Convey("Then loading fails validation", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When only DATABASE_URL is set", func() {
			_ = os.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/legends")

			cfg, err := config.Load()

			convey.Convey("Then defaults fill everything else", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Database.URL, convey.ShouldEqual, "postgres://u:p@localhost:5432/legends")
				convey.So(cfg.Server.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Server.CORSOrigins, convey.ShouldResemble, []string{"http://localhost:3000"})
				convey.So(cfg.Log.Level, convey.ShouldEqual, "info")
				convey.So(cfg.Database.MaxOpenConns, convey.ShouldEqual, 10)
				convey.So(cfg.Database.ConnMaxLifetime, convey.ShouldEqual, 30*time.Minute)
			})
		})

		convey.Convey("When prefixed environment variables are set", func() {
			_ = os.Setenv("DATABASE_URL", "postgres://ignored@localhost/legends")
			_ = os.Setenv("LEGENDS_DATABASE__URL", "postgres://u:p@db:5432/legends")
			_ = os.Setenv("LEGENDS_SERVER__ADDR", ":9090")
			_ = os.Setenv("LEGENDS_SERVER__CORS_ORIGINS", "http://a.test, http://b.test")
			_ = os.Setenv("LEGENDS_DATABASE__MAX_OPEN_CONNS", "25")
			_ = os.Setenv("LEGENDS_DATABASE__CONN_MAX_LIFETIME", "1m")

			cfg, err := config.Load()

			convey.Convey("Then they override defaults and DATABASE_URL", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Database.URL, convey.ShouldEqual, "postgres://u:p@db:5432/legends")
				convey.So(cfg.Server.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Server.CORSOrigins, convey.ShouldResemble, []string{"http://a.test", "http://b.test"})
				convey.So(cfg.Database.MaxOpenConns, convey.ShouldEqual, 25)
				convey.So(cfg.Database.ConnMaxLifetime, convey.ShouldEqual, time.Minute)
			})
		})

		convey.Convey("When a YAML file is provided", func() {
			path := writeTempConfig(t, `
server:
  addr: ":7070"
  mode: debug
log:
  level: debug
  format: console
database:
  url: postgres://file@localhost/legends
  migrate_on_start: true
`)
			_ = os.Setenv("LEGENDS_CONFIG", path)
			_ = os.Setenv("LEGENDS_LOG__LEVEL", "warn")

			cfg, err := config.Load()

			convey.Convey("Then file values apply and env still wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Server.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.Server.Mode, convey.ShouldEqual, "debug")
				convey.So(cfg.Log.Format, convey.ShouldEqual, "console")
				convey.So(cfg.Log.Level, convey.ShouldEqual, "warn")
				convey.So(cfg.Database.URL, convey.ShouldEqual, "postgres://file@localhost/legends")
				convey.So(cfg.Database.MigrateOnStart, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the YAML file does not exist", func() {
			_ = os.Setenv("LEGENDS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load()

			convey.Convey("Then a load error is returned", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value is out of range", func() {
			_ = os.Setenv("DATABASE_URL", "postgres://u:p@localhost/legends")
			_ = os.Setenv("LEGENDS_LOG__LEVEL", "verbose")

			_, err := config.Load()

			convey.Convey("Then validation rejects it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
