//go:build integration

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook-service/internal/platform/config"
)

// TestConfig_ShippedProfilesAreValid loads every profile committed under
// configs/ and checks that it passes validation.
func TestConfig_ShippedProfilesAreValid(t *testing.T) {
	t.Chdir("../..")

	for _, profile := range []string{"", "local", "test"} {
		t.Run("profile="+profile, func(t *testing.T) {
			cfg, err := config.Load(profile)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
		})
	}
}

// TestConfig_BaseProfileUsesMongo verifies the base file selects the
// document store and leaves the URI to the environment.
func TestConfig_BaseProfileUsesMongo(t *testing.T) {
	t.Chdir("../..")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Empty(t, cfg.Store.Mongo.URI)
	assert.Equal(t, "quotebook", cfg.Store.Mongo.Database)
	assert.Equal(t, "quotes", cfg.Store.Mongo.Collection)
	assert.Equal(t, 10*time.Second, cfg.Store.Mongo.ConnectTimeout)
}

// TestConfig_LocalProfileUsesSQLite verifies the local profile overrides the
// base store and log format.
func TestConfig_LocalProfileUsesSQLite(t *testing.T) {
	t.Chdir("../..")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "./data/quotebook.db", cfg.Store.SQLite.Path)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestConfig_EnvironmentBeatsProfile verifies env vars take precedence over
// both YAML layers.
func TestConfig_EnvironmentBeatsProfile(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("APP_STORE_DRIVER", "mongo")
	t.Setenv(config.EnvMongoURI, "mongodb://user:secret@db:27017")
	t.Setenv("APP_LOG_LEVEL", "trace")

	cfg, err := config.Load("local")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "mongodb://user:secret@db:27017", cfg.Store.Mongo.URI)
	assert.Equal(t, "trace", cfg.Log.Level)
}

// TestConfig_InvalidDriverRejected verifies an unknown store driver fails
// validation rather than startup.
func TestConfig_InvalidDriverRejected(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("APP_STORE_DRIVER", "postgres")

	cfg, err := config.Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.driver")
}
