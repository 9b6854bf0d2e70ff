package configinfra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	configdomain "github.com/czokomaster/czokomaster/internal/core/domain/config"
	configports "github.com/czokomaster/czokomaster/internal/core/ports/config"
)

// Settings are the bootstrap options needed before any plugin runs.
type Settings struct {
	ConfigPath string
	PluginDir  string
	LogLevel   logrus.Level
	Sources    configdomain.Snapshot
}

// UnifiedLoader merges defaults, the [core] section of the config file and the
// environment, in increasing precedence.
type UnifiedLoader struct {
	env *EnvLoader
}

// NewUnifiedLoader creates a new unified configuration loader
func NewUnifiedLoader() *UnifiedLoader {
	return &UnifiedLoader{env: NewEnvLoader()}
}

// Load resolves the settings and returns the store backing the config file.
func (l *UnifiedLoader) Load(ctx context.Context) (Settings, *FileStore, error) {
	env := l.env.LoadEnv()

	configPath := env.String(configdomain.KeyConfigPath)
	if configPath == "" {
		configPath = domain.DefaultConfigPath
	}
	store := NewFileStore(configPath)

	snap := configdomain.Defaults(configPath)
	for _, loader := range []configports.Loader{NewFileLoader(store), l.env} {
		loaded, err := loader.Load(ctx)
		if err != nil {
			return Settings{}, nil, fmt.Errorf("failed to load %s settings: %w", loader.Name(), err)
		}
		snap.Merge(loaded)
	}

	level, err := logrus.ParseLevel(snap.String(configdomain.KeyLogLevel))
	if err != nil {
		entry := snap[configdomain.KeyLogLevel]
		return Settings{}, nil, fmt.Errorf("invalid log level from %s %s: %w", entry.Source, entry.SourcePath, err)
	}

	return Settings{
		ConfigPath: configPath,
		PluginDir:  snap.String(configdomain.KeyPluginDir),
		LogLevel:   level,
		Sources:    snap,
	}, store, nil
}
