package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// ErrTableMissing signals that the documents table has not been created in
// the target database yet.
var ErrTableMissing = errors.New("match documents table does not exist; enable store.postgres.migrate or run the migrations")

// mapPgError translates the Postgres error codes we handle explicitly;
// everything else passes through.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return ErrTableMissing
	}
	return err
}

// PostgresConfig describes the jsonb documents table raw matches live in
// when the service is pointed at a database instead of a directory.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"gt=0"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db_name" validate:"required"`
	SSLMode           string `mapstructure:"sslmode"`
	Table             string `mapstructure:"table"`
	Migrate           bool   `mapstructure:"migrate"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

// DSN assembles the connection string through url.URL so credentials with
// reserved characters survive intact.
func (cfg PostgresConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   cfg.DBName,
	}
	if cfg.User != "" || cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	q := u.Query()
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// PostgresSource lists and fetches raw match documents from a table of
// (id text, document jsonb) rows.
type PostgresSource struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresSource builds the pgx pool the same way the rest of our
// services do: DSN assembled through url.URL for correct escaping, tracelog
// wired to zerolog, pool tuning from config.
func NewPostgresSource(ctx context.Context, cfg PostgresConfig, logger zerolog.Logger) (*PostgresSource, error) {
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("postgres config validation error: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	var tlLevel tracelog.LogLevel
	switch {
	case logger.GetLevel() <= zerolog.TraceLevel:
		tlLevel = tracelog.LogLevelTrace
	case logger.GetLevel() <= zerolog.DebugLevel:
		tlLevel = tracelog.LogLevelDebug
	case logger.GetLevel() <= zerolog.InfoLevel:
		tlLevel = tracelog.LogLevelInfo
	case logger.GetLevel() <= zerolog.WarnLevel:
		tlLevel = tracelog.LogLevelWarn
	default:
		tlLevel = tracelog.LogLevelError
	}
	poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newPgxLogger(logger),
		LogLevel: tlLevel,
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	}
	if cfg.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = time.Duration(cfg.MaxConnIdleTime) * time.Second
	}
	if cfg.HealthCheckPeriod > 0 {
		poolConfig.HealthCheckPeriod = time.Duration(cfg.HealthCheckPeriod) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	table := cfg.Table
	if table == "" {
		table = "matches"
	}
	return &PostgresSource{pool: pool, table: table}, nil
}

func (s *PostgresSource) List(ctx context.Context) ([]string, error) {
	sql := fmt.Sprintf("SELECT id FROM %s ORDER BY id", pgx.Identifier{s.table}.Sanitize())
	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list match documents: %w", mapPgError(err))
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		keys = append(keys, id)
	}
	return keys, rows.Err()
}

func (s *PostgresSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	sql := fmt.Sprintf("SELECT document FROM %s WHERE id = $1", pgx.Identifier{s.table}.Sanitize())
	var doc []byte
	if err := s.pool.QueryRow(ctx, sql, key).Scan(&doc); err != nil {
		return nil, fmt.Errorf("fetch match document %s: %w", key, mapPgError(err))
	}
	return doc, nil
}

// Close releases the underlying pool.
func (s *PostgresSource) Close() { s.pool.Close() }
