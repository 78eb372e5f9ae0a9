package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Zero(t, cfg.MaxTripSchedules)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Error(t, cfg.Validate(), "trip limit and secret have no defaults")
}

func TestFromViper_Environment(t *testing.T) {
	t.Setenv("TRILO_MAX_TRIP_SCHEDULES", "150")
	t.Setenv("TRILO_JWT_SECRET", "s3cret")
	t.Setenv("TRILO_STORE", "Memory")
	t.Setenv("TRILO_DB_HOST", "db.internal")
	t.Setenv("TRILO_CORS_ORIGINS", "http://localhost:3000, https://trilo.app")

	cfg, err := fromViper(newViper())
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 150, cfg.MaxTripSchedules)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, []string{"http://localhost:3000", "https://trilo.app"}, cfg.CORSOrigins)
	assert.Contains(t, cfg.DB.DSN(), "host=db.internal")
}
