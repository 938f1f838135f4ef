package app_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracknum/internal/app"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv records the originals for restore; the vars must then be
	// absent for the defaults to apply.
	for _, key := range []string{"TRACKNUM_DATA_DIR", "TRACKNUM_LOG_LEVEL", "TRACKNUM_LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("TRACKNUM_DATA_DIR", "/srv/couriers")
	t.Setenv("TRACKNUM_LOG_LEVEL", "debug")
	t.Setenv("TRACKNUM_LOG_FORMAT", "json")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/couriers", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestNewWithEmbeddedSpecs(t *testing.T) {
	a, err := app.New(app.Config{LogLevel: "error"})
	require.NoError(t, err)
	require.NotNil(t, a.Catalog)
	assert.NotEmpty(t, a.Catalog.Definitions())

	tn := a.Catalog.Find("RB123456785GB")
	require.NotNil(t, tn)
	assert.Equal(t, "s10", tn.Courier.Code)
}

func TestNewWithMissingDataDir(t *testing.T) {
	_, err := app.New(app.Config{DataDir: t.TempDir() + "/nope"})
	require.Error(t, err)
}
