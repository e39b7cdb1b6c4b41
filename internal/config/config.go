package config

import (
	"github.com/maxviazov/cricket-stats-service/internal/logger"
	"github.com/maxviazov/cricket-stats-service/internal/store"
)

type Config struct {
	App    AppConfig           `mapstructure:"app"`
	// Logger is validated by logger.New after its defaults are applied.
	Logger logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Store  StoreConfig         `mapstructure:"store"`
}

// AppConfig covers the HTTP surface of the service.
type AppConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port" validate:"gt=0"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// StoreConfig selects and tunes the match document source.
type StoreConfig struct {
	Source   string               `mapstructure:"source" validate:"oneof=file postgres"`
	DataDir  string               `mapstructure:"data_dir"`
	MaxFiles int                  `mapstructure:"max_files" validate:"gte=0"`
	Workers  int                  `mapstructure:"workers" validate:"gte=0"`
	// Postgres is validated by NewPostgresSource, only when selected.
	Postgres store.PostgresConfig `mapstructure:"postgres" validate:"-"`
}
