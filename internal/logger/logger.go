package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type LoggerConfig struct {
	Level          string                 `json:"level,omitempty" mapstructure:"level" validate:"oneof=debug info warn error"`
	Format         string                 `json:"format,omitempty" mapstructure:"format" validate:"oneof=json console"`
	TimeField      string                 `json:"timeField,omitempty" mapstructure:"time_field"`
	TimeFormat     string                 `json:"timeFormat,omitempty" mapstructure:"time_format" validate:"oneof=rfc3339 rfc3339nano unix unix_ms"`
	ServiceName    string                 `json:"serviceName,omitempty" mapstructure:"service_name"`
	ServiceVersion string                 `json:"serviceVersion,omitempty" mapstructure:"service_version"`
	Env            string                 `json:"env,omitempty" mapstructure:"env" validate:"oneof=dev staging prod"`
	WithCaller     bool                   `json:"withCaller,omitempty" mapstructure:"with_caller"`
	Stacktrace     bool                   `json:"stacktrace,omitempty" mapstructure:"stacktrace"`
	DebugLogFile   string                 `json:"debugLogFile,omitempty" mapstructure:"debug_log_file"`
	Fields         map[string]interface{} `json:"fields,omitempty" mapstructure:"fields"`
}

func New(cfg *LoggerConfig) (zerolog.Logger, error) {
	cfg.setDefaults()

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return zerolog.Logger{}, fmt.Errorf("logger config validation error: %w", err)
	}

	// apply time settings from config
	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = cfg.TimeFormat

	logger := zerolog.New(cfg.writer()).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env).
		Logger()

	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	if cfg.Stacktrace {
		logger = logger.With().Stack().Logger()
	}
	if len(cfg.Fields) > 0 {
		logger = logger.With().Fields(cfg.Fields).Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

// writer picks the log destination: JSON on stdout for prod-like
// environments, human console on stderr for dev, optionally teed into a
// debug file so the full history survives terminal scrollback.
func (c *LoggerConfig) writer() io.Writer {
	if c.Format == "json" {
		return os.Stdout
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: c.TimeFormat,
	}
	if c.Level != "debug" || c.DebugLogFile == "" {
		return console
	}

	if err := os.MkdirAll(filepath.Dir(c.DebugLogFile), 0755); err != nil {
		return console
	}
	file, err := os.OpenFile(c.DebugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// fall back to console only if the file cannot be opened
		return console
	}
	return zerolog.MultiLevelWriter(console, file)
}

func (c *LoggerConfig) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}

	// level and format defaults depend on environment
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}

	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "rfc3339nano"
	}

	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if !c.Stacktrace && c.Env != "dev" {
		c.Stacktrace = true
	}

	if c.ServiceName == "" {
		c.ServiceName = "cricket-stats-service"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.0.1"
	}

	if c.Fields == nil {
		c.Fields = make(map[string]interface{})
	}
}
