package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"invoicor"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	data := `{
		"database_path": "/tmp/ledger.db",
		"session_ttl": "12h",
		"search_debounce": "150ms",
		"token_secret": "s3cret"
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "/tmp/ledger.db", cfg.DatabasePath)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "s3cret", cfg.TokenSecret)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path": "x.db"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "x.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "invoicor.db", cfg.DatabasePath)
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-d", "other.db", "-k", "topsecret")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, "topsecret", cfg.TokenSecret)
}
