package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"stagehand/internal/datasets"
	"stagehand/internal/store"
	"stagehand/internal/types"
)

const (
	defaultLiveEndpoint      = "http://127.0.0.1:8787"
	defaultDispatchTimeoutMS = 5000
	defaultAudience          = types.AudienceCustomers
)

type Config struct {
	Live    LiveConfig    `toml:"live"`
	Logging LoggingConfig `toml:"logging"`
	Store   StoreConfig   `toml:"store"`
	Demo    DemoConfig    `toml:"demo"`
}

type LiveConfig struct {
	Endpoint  string `toml:"endpoint"`
	TimeoutMS int    `toml:"timeout_ms"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type StoreConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type DemoConfig struct {
	Audience string `toml:"audience"`
	Industry string `toml:"industry"`
}

func DefaultConfig() Config {
	return Config{
		Live: LiveConfig{
			Endpoint:  defaultLiveEndpoint,
			TimeoutMS: defaultDispatchTimeoutMS,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Store: StoreConfig{
			Backend: store.BackendFile,
		},
		Demo: DemoConfig{
			Audience: string(defaultAudience),
			Industry: datasets.DefaultIndustry,
		},
	}
}

func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadConfigFromPath(path)
}

func (c Config) LiveEndpoint() string {
	endpoint := strings.TrimSpace(c.Live.Endpoint)
	if endpoint == "" {
		return defaultLiveEndpoint
	}
	return strings.TrimRight(endpoint, "/")
}

func (c Config) DispatchTimeout() time.Duration {
	if c.Live.TimeoutMS <= 0 {
		return time.Duration(defaultDispatchTimeoutMS) * time.Millisecond
	}
	return time.Duration(c.Live.TimeoutMS) * time.Millisecond
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func (c Config) StoreBackend() string {
	backend := strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if backend == "" {
		return store.BackendFile
	}
	return backend
}

// StorePath resolves the session store path for the configured backend.
// An explicit relative path is resolved against the data directory.
func (c Config) StorePath() (string, error) {
	path := strings.TrimSpace(c.Store.Path)
	if path != "" {
		if strings.HasPrefix(path, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			return filepath.Join(home, path[2:]), nil
		}
		if filepath.IsAbs(path) {
			return path, nil
		}
		dataDir, err := DataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dataDir, path), nil
	}
	switch c.StoreBackend() {
	case store.BackendBbolt:
		return SessionDBPath()
	case store.BackendMemory:
		return "", nil
	default:
		return SessionStatePath()
	}
}

func (c Config) Audience() types.Audience {
	audience := types.Audience(strings.ToLower(strings.TrimSpace(c.Demo.Audience)))
	if !audience.Valid() {
		return defaultAudience
	}
	return audience
}

func (c Config) Industry() string {
	industry := strings.ToLower(strings.TrimSpace(c.Demo.Industry))
	if industry == "" {
		return datasets.DefaultIndustry
	}
	return industry
}

func loadConfigFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}
