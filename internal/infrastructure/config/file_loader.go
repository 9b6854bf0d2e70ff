package configinfra

import (
	"context"
	"errors"
	"io/fs"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	configdomain "github.com/czokomaster/czokomaster/internal/core/domain/config"
	configports "github.com/czokomaster/czokomaster/internal/core/ports/config"
)

// CoreSection holds the tool's own settings in the config file.
const CoreSection = "core"

// FileLoader reads the bootstrap settings from the [core] section of the config
// file. A missing file or option is not an error: defaults apply.
type FileLoader struct {
	store *FileStore
}

func NewFileLoader(store *FileStore) *FileLoader { return &FileLoader{store: store} }

func (l *FileLoader) Name() string { return "filesystem" }

func (l *FileLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	snap := make(configdomain.Snapshot)

	for _, field := range []string{configdomain.KeyPluginDir, configdomain.KeyLogLevel} {
		value, err := l.store.String(CoreSection, field)
		switch {
		case err == nil:
			snap[field] = configdomain.Entry{
				Key:        field,
				Value:      value,
				Source:     "file",
				SourcePath: l.store.Path(),
				Priority:   configdomain.PriorityFile,
			}
		case errors.Is(err, domain.ErrConfigKeyNotFound):
			continue
		case errors.Is(err, fs.ErrNotExist):
			return snap, nil
		default:
			return snap, err
		}
	}

	return snap, nil
}

var _ configports.Loader = (*FileLoader)(nil)
