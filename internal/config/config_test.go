package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/equitrack/dashboard/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"LEDGER_API_URL", "LEDGER_TIMEOUT", "FEED_LIMIT", "CATEGORY_LABEL_MIN_SHARE", "PORT", "API_URL", "CORS_ALLOW_ORIGINS", "ENABLE_PPROF"} {
		t.Setenv(key, "")
	}

	c := config.FromEnv()
	require.Nil(t, c.Validate())

	assert.Equal(t, "http://localhost:8080/api/v1.0", c.LedgerAPIURL)
	assert.Equal(t, 60*time.Second, c.LedgerTimeout)
	assert.Equal(t, 5, c.FeedLimit)
	assert.True(t, decimal.NewFromInt(5).Equal(c.CategoryLabelMinShare))
	assert.Equal(t, ":8081", c.Address())
	assert.Equal(t, "http://localhost:8081", c.APIURL)
	assert.Empty(t, c.CORSAllowOrigins)
	assert.False(t, c.EnablePprof)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LEDGER_API_URL", "https://ledger.example.com/api/v1.0/")
	t.Setenv("LEDGER_TIMEOUT", "5s")
	t.Setenv("FEED_LIMIT", "10")
	t.Setenv("CATEGORY_LABEL_MIN_SHARE", "2.5")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173 https://app.example.com")
	t.Setenv("ENABLE_PPROF", "true")
	t.Setenv("API_URL", "https://equitrack.example.com/api/")

	c := config.FromEnv()
	require.Nil(t, c.Validate())

	assert.Equal(t, "https://ledger.example.com/api/v1.0", c.LedgerAPIURL)
	assert.Equal(t, 5*time.Second, c.LedgerTimeout)
	assert.Equal(t, 10, c.FeedLimit)
	assert.True(t, decimal.RequireFromString("2.5").Equal(c.CategoryLabelMinShare))
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, c.CORSAllowOrigins)
	assert.True(t, c.EnablePprof)
	assert.Equal(t, "https://equitrack.example.com/api", c.APIURL)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	t.Setenv("LEDGER_API_URL", "ftp://ledger")
	t.Setenv("LEDGER_TIMEOUT", "soon")
	t.Setenv("FEED_LIMIT", "0")
	t.Setenv("CATEGORY_LABEL_MIN_SHARE", "120")
	t.Setenv("PORT", "http")
	t.Setenv("ENABLE_PPROF", "sometimes")
	t.Setenv("API_URL", "/relative")

	err := config.FromEnv().Validate()
	require.NotNil(t, err)

	for _, key := range []string{"LEDGER_API_URL", "LEDGER_TIMEOUT", "FEED_LIMIT", "CATEGORY_LABEL_MIN_SHARE", "PORT", "ENABLE_PPROF", "API_URL"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FEED_LIMIT=7\n"), 0o600))

	wd, err := os.Getwd()
	require.Nil(t, err)
	require.Nil(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv does not override variables that are already set
	t.Setenv("FEED_LIMIT", "")
	os.Unsetenv("FEED_LIMIT")

	assert.Equal(t, 7, config.Load().FeedLimit)
}
