package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, ":50051", cfg.Server.Addr)
	assert.Equal(t, EngineMutex, cfg.Engine)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, int64(0), cfg.Account.DefaultMaxCredit)
	assert.Equal(t, Default(), cfg)
}

func TestParse(t *testing.T) {
	data := []byte(`
server:
  addr: "127.0.0.1:9000"
  queue_size: 64
engine: serial
account:
  default_max_credit: 500
log:
  level: debug
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Server:  Server{Addr: "127.0.0.1:9000", QueueSize: 64},
		Engine:  EngineSerial,
		Account: Account{DefaultMaxCredit: 500},
		Log:     Log{Level: "debug"},
	}, cfg)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown engine", data: "engine: lmax"},
		{name: "credit above limit", data: "account:\n  default_max_credit: 1000001"},
		{name: "credit below limit", data: "account:\n  default_max_credit: -1000001"},
		{name: "negative default", data: "account:\n  default_max_credit: -5"},
		{name: "negative queue", data: "server:\n  queue_size: -1"},
		{name: "unknown log level", data: "log:\n  level: trace"},
		{name: "malformed yaml", data: "server: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseCreditBounds(t *testing.T) {
	cfg, err := Parse([]byte("account:\n  default_max_credit: 1000000"))
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), cfg.Account.DefaultMaxCredit)

	_, err = Parse([]byte("account:\n  default_max_credit: -1"))
	assert.ErrorContains(t, err, "default_max_credit")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: serial\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, EngineSerial, cfg.Engine)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
