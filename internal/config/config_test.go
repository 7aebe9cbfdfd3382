package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/require"
)

func TestEnvDefaults(t *testing.T) {
	var conf Config
	require.NoError(t, env.Parse(&conf))

	require.InDelta(t, 5.0, conf.WithdrawalFeePercent, 0)
	require.InDelta(t, 10.0, conf.WithdrawalMinAmount, 0)
	require.Equal(t, uint(3), conf.RepairWorkers)
	require.Equal(t, 30*time.Second, conf.RepairInterval)
	require.Equal(t, "5 10 * * *", conf.ReconcileSpec)
	require.Equal(t, 10*time.Minute, conf.PackageCacheTTL)
	require.Equal(t, "dove", conf.RedisPrefix)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WITHDRAWAL_FEE_PERCENT", "2.5")
	t.Setenv("REPAIR_INTERVAL", "1m")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	var conf Config
	require.NoError(t, env.Parse(&conf))

	require.InDelta(t, 2.5, conf.WithdrawalFeePercent, 0)
	require.Equal(t, time.Minute, conf.RepairInterval)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, conf.CORSOrigins)
}

func TestMergeConfig(t *testing.T) {
	envConf := &Config{DatabaseDSN: "postgres://env", JWTSecret: "secret", RepairWorkers: 7}
	flagsConf := &Config{RunAddress: "localhost:8080", DatabaseDSN: "postgres://flag", MigrationsDir: "migrations"}

	conf := mergeConfig(envConf, flagsConf)
	require.Equal(t, "postgres://env", conf.DatabaseDSN)
	require.Equal(t, "localhost:8080", conf.RunAddress)
	require.Equal(t, "migrations", conf.MigrationsDir)
	require.Equal(t, "secret", conf.JWTSecret)
	require.Equal(t, uint(7), conf.RepairWorkers)
}
