package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "biztime-api", cfg.App.Name)
	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "biztime", cfg.DB.DBName)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_EntornoTestUsaBaseSeparada(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "biztime_test", cfg.DB.DBName)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_NAME", "otra")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("HTTP_WRITE_TIMEOUT", "30")
	t.Setenv("HTTP_IDLE_TIMEOUT", "2m")
	t.Setenv("STORE_DRIVER", "MEMORY")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "otra", cfg.DB.DBName, "DB_NAME explícito gana sobre el default de test")
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 2*time.Minute, cfg.HTTP.IdleTimeout)
	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{
		Host: "db", Port: 5432, User: "biz", Password: "p@ss:word", DBName: "biztime", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://biz:p%40ss%3Aword@db:5432/biztime?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@remote/db"
	assert.Equal(t, "postgres://u:p@remote/db", c.ConnectionString())
}
