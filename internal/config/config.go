package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	pathutil "github.com/redjax/weather-cli/internal/utils/path"
)

const (
	ProviderNameKey  = "provider_name"
	ServerAddressKey = "server_address"

	DefaultServerAddress = "http://[::1]:50051"
	DefaultConfigFile    = ".weather_cli_config"

	// EnvPrefix maps WEATHER_CLI_PROVIDER_NAME to provider_name, etc.
	EnvPrefix = "WEATHER_CLI_"
	// ServerFlag is the command-line flag that overrides server_address.
	ServerFlag = "server"
)

// Keys written by older releases of the CLI.
var legacyKeys = map[string]string{
	"WEATHER_CLI_PROVIDER_NAME": ProviderNameKey,
	"WEATHER_CLI_SERVER":        ServerAddressKey,
}

// Store is the CLI's persistent key/value configuration. Values come from the
// config file, then WEATHER_CLI_* environment variables, then flags. Only file
// values and values written with Set are persisted.
type Store struct {
	path   string
	parser koanf.Parser

	// file holds what Persist writes back.
	file *koanf.Koanf
	// k holds the effective values.
	k *koanf.Koanf
}

// Load reads the config file at path (DefaultConfigFile when empty) and
// applies the environment and flagSet overrides. A missing file is an empty
// configuration.
func Load(path string, flagSet *pflag.FlagSet) (*Store, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	path, err := pathutil.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving config path: %w", err)
	}

	s := &Store{
		path:   path,
		parser: parserForFile(path),
		file:   koanf.New("."),
		k:      koanf.New("."),
	}

	if _, err := os.Stat(path); err == nil {
		if err := s.file.Load(file.Provider(path), s.parser); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	if err := s.normalizeLegacyKeys(); err != nil {
		return nil, err
	}

	if err := s.k.Merge(s.file); err != nil {
		return nil, fmt.Errorf("error merging config: %w", err)
	}

	if err := s.k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	if flagSet != nil {
		if err := s.k.Load(posflag.ProviderWithFlag(flagSet, ".", s.k, flagKey), nil); err != nil {
			return nil, fmt.Errorf("error loading flags: %w", err)
		}
	}

	return s, nil
}

// Get returns the effective value for key. Empty values count as absent.
func (s *Store) Get(key string) (string, bool) {
	if !s.k.Exists(key) {
		return "", false
	}
	v := s.k.String(key)
	return v, v != ""
}

// Set updates key in memory. Call Persist to write it to disk.
func (s *Store) Set(key, value string) error {
	if err := s.file.Set(key, value); err != nil {
		return err
	}
	return s.k.Set(key, value)
}

// Persist writes the file-backed values to the config file atomically.
func (s *Store) Persist() error {
	data, err := s.file.Marshal(s.parser)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return writeFileAtomic(s.path, data, 0o600)
}

// Path is the config file location.
func (s *Store) Path() string {
	return s.path
}

// ServerAddress returns server_address or DefaultServerAddress.
func (s *Store) ServerAddress() string {
	if v, ok := s.Get(ServerAddressKey); ok {
		return v
	}
	return DefaultServerAddress
}

// All returns the effective values of the known keys, defaults applied.
func (s *Store) All() map[string]string {
	provider, _ := s.Get(ProviderNameKey)
	return map[string]string{
		ProviderNameKey:  provider,
		ServerAddressKey: s.ServerAddress(),
	}
}

func (s *Store) normalizeLegacyKeys() error {
	for old, key := range legacyKeys {
		if !s.file.Exists(old) {
			continue
		}
		if !s.file.Exists(key) {
			if err := s.file.Set(key, s.file.String(old)); err != nil {
				return fmt.Errorf("error migrating config key %s: %w", old, err)
			}
		}
		s.file.Delete(old)
	}
	return nil
}

func envKey(s string) string {
	switch key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix)); key {
	case ProviderNameKey, ServerAddressKey:
		return key
	case "server":
		return ServerAddressKey
	default:
		return ""
	}
}

// flagKey only lets an explicitly passed --server through; flag defaults must
// not shadow the file.
func flagKey(f *pflag.Flag) (string, interface{}) {
	if f.Name != ServerFlag || !f.Changed {
		return "", nil
	}
	return ServerAddressKey, f.Value.String()
}

// parserForFile picks a parser by extension. Anything unrecognized, including
// the extensionless default file, is read as KEY=value lines.
func parserForFile(path string) koanf.Parser {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser()
	case ".json":
		return json.Parser()
	case ".toml":
		return toml.Parser()
	default:
		return dotenv.Parser()
	}
}
