package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB"`
	RedisPrefix     string        `env:"REDIS_PREFIX"      envDefault:"dove"`
	PackageCacheTTL time.Duration `env:"PACKAGE_CACHE_TTL" envDefault:"10m"`

	WithdrawalFeePercent float64 `env:"WITHDRAWAL_FEE_PERCENT" envDefault:"5"`
	WithdrawalMinAmount  float64 `env:"WITHDRAWAL_MIN_AMOUNT"  envDefault:"10"`

	RepairWorkers  uint          `env:"REPAIR_WORKERS"  envDefault:"3"`
	RepairInterval time.Duration `env:"REPAIR_INTERVAL" envDefault:"30s"`
	RepairBatch    uint          `env:"REPAIR_BATCH"    envDefault:"100"`

	ReconcileSpec string   `env:"RECONCILE_SPEC" envDefault:"5 10 * * *"`
	CORSOrigins   []string `env:"CORS_ORIGINS"   envSeparator:","`

	// TxRetries is the number of attempts of a transaction that lost a version race.
	TxRetries uint `env:"TX_RETRIES" envDefault:"3"`
}

// LoadConfig reads .env when present, then the environment, then flags for the connection settings.
// Environment values win over flags.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var flagsConfig, envConfig Config
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %w", envParseErr)
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address, package cache is off when empty")

	flag.Parse()
}

// mergeConfig takes the env config and fills the flag-backed settings it leaves blank.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
