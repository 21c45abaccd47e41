// Package persistence loads the static configuration surfaces of the
// bridge: the YAML process config and the JSON capability descriptors.
// Both are read once at startup and treated as immutable afterwards.
package persistence

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"alexa-cloud-bridge/internal/domain/model"
)

type YAMLConfigRepository struct {
	path string
}

func NewYAMLConfigRepository(path string) *YAMLConfigRepository {
	return &YAMLConfigRepository{path: path}
}

// Load reads the config file, falling back to defaults when the file does
// not exist, then applies environment overrides on top.
func (r *YAMLConfigRepository) Load() (*model.Config, error) {
	cfg := model.DefaultConfig()

	data, err := os.ReadFile(r.path)
	switch {
	case os.IsNotExist(err):
		// Defaults plus env is a valid configuration.
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", r.path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", r.path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets the hosting environment win over the file. The
// vendor API variable may carry a bare host, scheme is added when missing.
func applyEnvOverrides(cfg *model.Config) {
	if v := os.Getenv("API_URL"); v != "" {
		if !strings.Contains(v, "://") {
			v = "https://" + v
		}
		cfg.Vendor.BaseURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.Telemetry.DSN = v
	}
	if v := os.Getenv("SENTRY_ENVIRONMENT"); v != "" {
		cfg.Telemetry.Environment = v
	}
	if v := os.Getenv("SENTRY_RELEASE"); v != "" {
		cfg.Telemetry.Release = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
