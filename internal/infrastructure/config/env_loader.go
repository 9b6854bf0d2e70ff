package configinfra

import (
	"context"
	"os"

	configdomain "github.com/czokomaster/czokomaster/internal/core/domain/config"
	configports "github.com/czokomaster/czokomaster/internal/core/ports/config"
)

// Environment variables understood by the tool.
const (
	EnvConfigPath = "CZOKOMASTER_CONFIG"
	EnvPluginDir  = "CZOKOMASTER_PLUGIN_DIR"
	EnvLogLevel   = "CZOKOMASTER_LOG_LEVEL"
)

type EnvLoader struct{}

func NewEnvLoader() *EnvLoader { return &EnvLoader{} }

func (l *EnvLoader) Name() string { return "env" }

// Load implements Loader by returning the environment snapshot.
func (l *EnvLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	return l.LoadEnv(), nil
}

// LoadEnv builds a snapshot from the CZOKOMASTER_* environment variables.
func (l *EnvLoader) LoadEnv() configdomain.Snapshot {
	snap := make(configdomain.Snapshot)
	add := func(key, field string) {
		if v := os.Getenv(key); v != "" {
			snap[field] = configdomain.Entry{Key: field, Value: v, Source: "env", SourcePath: key, Priority: configdomain.PriorityEnv}
		}
	}

	add(EnvConfigPath, configdomain.KeyConfigPath)
	add(EnvPluginDir, configdomain.KeyPluginDir)
	add(EnvLogLevel, configdomain.KeyLogLevel)

	return snap
}

var _ configports.Loader = (*EnvLoader)(nil)
