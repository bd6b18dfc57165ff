package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)

	s, err := Load(path, nil)
	require.NoError(t, err)

	_, ok := s.Get(ProviderNameKey)
	assert.False(t, ok)
	assert.Equal(t, DefaultServerAddress, s.ServerAddress())
	assert.Equal(t, path, s.Path())
}

func TestSetPersistRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"dotenv default", DefaultConfigFile},
		{"yaml", "config.yaml"},
		{"json", "config.json"},
		{"toml", "config.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)

			s, err := Load(path, nil)
			require.NoError(t, err)
			require.NoError(t, s.Set(ProviderNameKey, "acme"))
			require.NoError(t, s.Persist())

			reloaded, err := Load(path, nil)
			require.NoError(t, err)

			v, ok := reloaded.Get(ProviderNameKey)
			require.True(t, ok)
			assert.Equal(t, "acme", v)
		})
	}
}

func TestPersistLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)

	s, err := Load(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ProviderNameKey, "metar"))
	require.NoError(t, s.Persist())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultConfigFile, entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPersistReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFile)

	s, err := Load(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ServerAddressKey, "http://a-rather-long-server-name.example:50051"))
	require.NoError(t, s.Set(ProviderNameKey, "metar"))
	require.NoError(t, s.Persist())

	s, err = Load(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ServerAddressKey, "http://b:1"))
	require.NoError(t, s.Persist())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://b:1")
	assert.NotContains(t, string(data), "a-rather-long-server-name")

	reloaded, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://b:1", reloaded.ServerAddress())
	v, _ := reloaded.Get(ProviderNameKey)
	assert.Equal(t, "metar", v)
}

func TestLegacyKeysAreNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	legacy := "WEATHER_CLI_PROVIDER_NAME=acme\nWEATHER_CLI_SERVER=http://weather.local:8080\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	s, err := Load(path, nil)
	require.NoError(t, err)

	v, ok := s.Get(ProviderNameKey)
	require.True(t, ok)
	assert.Equal(t, "acme", v)
	assert.Equal(t, "http://weather.local:8080", s.ServerAddress())

	require.NoError(t, s.Persist())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "WEATHER_CLI_")
	assert.Contains(t, string(data), ProviderNameKey)
}

func TestEnvOverridesAreNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("provider_name=acme\n"), 0o600))

	t.Setenv("WEATHER_CLI_SERVER_ADDRESS", "http://env.example:9000")
	t.Setenv("WEATHER_CLI_UNRELATED", "ignored")

	s, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example:9000", s.ServerAddress())

	require.NoError(t, s.Persist())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "env.example")
	assert.NotContains(t, string(data), "ignored")
}

func TestServerFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("server_address=http://file.example:1\n"), 0o600))

	t.Run("unset flag keeps file value", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String(ServerFlag, "", "")
		require.NoError(t, fs.Parse(nil))

		s, err := Load(path, fs)
		require.NoError(t, err)
		assert.Equal(t, "http://file.example:1", s.ServerAddress())
	})

	t.Run("explicit flag wins", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String(ServerFlag, "", "")
		require.NoError(t, fs.Parse([]string{"--server", "http://flag.example:2"}))

		s, err := Load(path, fs)
		require.NoError(t, err)
		assert.Equal(t, "http://flag.example:2", s.ServerAddress())
	})
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestAllAppliesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile), nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		ProviderNameKey:  "",
		ServerAddressKey: DefaultServerAddress,
	}, s.All())
}
