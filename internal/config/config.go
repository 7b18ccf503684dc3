package config

import (
	"time"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Index     IndexConfig     `yaml:"index"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"  validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"  validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"  validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"  validate:"gt=0"`
}

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// DatabaseConfig selects the record store and holds its connection settings.
// The pool settings only apply to postgres.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres" validate:"oneof=postgres sqlite memory"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                validate:"required_unless=Driver memory"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"  validate:"gte=1"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"   validate:"gte=0,ltefield=MaxConns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
}

// ScheduleConfig holds the scheduler parameters.
type ScheduleConfig struct {
	Policy            string        `yaml:"policy"              env:"SCHEDULE_POLICY"              env-default:"scored" validate:"oneof=scored fixed"`
	PassThreshold     float64       `yaml:"pass_threshold"      env:"SCHEDULE_PASS_THRESHOLD"      env-default:"0.8"    validate:"gte=0,lte=1"`
	FailThreshold     float64       `yaml:"fail_threshold"      env:"SCHEDULE_FAIL_THRESHOLD"      env-default:"0.6"    validate:"gte=0,lte=1"`
	GrowthFactor      float64       `yaml:"growth_factor"       env:"SCHEDULE_GROWTH_FACTOR"       env-default:"2.0"    validate:"gte=1"`
	MaxIntervalDays   int           `yaml:"max_interval_days"   env:"SCHEDULE_MAX_INTERVAL_DAYS"   env-default:"60"     validate:"gte=1"`
	FixedIntervalDays int           `yaml:"fixed_interval_days" env:"SCHEDULE_FIXED_INTERVAL_DAYS" env-default:"3"      validate:"gte=0"`
	MaxRetries        int           `yaml:"max_retries"         env:"SCHEDULE_MAX_RETRIES"         env-default:"5"      validate:"gte=1"`
	RetryDelay        time.Duration `yaml:"retry_delay"         env:"SCHEDULE_RETRY_DELAY"         env-default:"2ms"    validate:"gte=0"`
	CommitTimeout     time.Duration `yaml:"commit_timeout"      env:"SCHEDULE_COMMIT_TIMEOUT"      env-default:"2s"     validate:"gte=0"`
}

// Domain converts the section to the scheduler's domain type.
func (c ScheduleConfig) Domain() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		Mode:              domain.PolicyMode(c.Policy),
		PassThreshold:     c.PassThreshold,
		FailThreshold:     c.FailThreshold,
		GrowthFactor:      c.GrowthFactor,
		MaxIntervalDays:   c.MaxIntervalDays,
		FixedIntervalDays: c.FixedIntervalDays,
		MaxRetries:        c.MaxRetries,
		RetryDelay:        c.RetryDelay,
		CommitTimeout:     c.CommitTimeout,
	}
}

// IndexConfig holds due index settings. A zero ReconcileInterval disables
// periodic reconciliation.
type IndexConfig struct {
	ReconcileInterval time.Duration `yaml:"reconcile_interval" env:"INDEX_RECONCILE_INTERVAL" env-default:"10m"  validate:"gte=0"`
	WarmOnStartup     bool          `yaml:"warm_on_startup"    env:"INDEX_WARM_ON_STARTUP"    env-default:"true"`
}

// RateLimitConfig holds the per-client request rate limit.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RPS     float64 `yaml:"rps"     env:"RATE_LIMIT_RPS"     env-default:"50"  validate:"gt=0"`
	Burst   int     `yaml:"burst"   env:"RATE_LIMIT_BURST"   env-default:"100" validate:"gte=1"`
}
