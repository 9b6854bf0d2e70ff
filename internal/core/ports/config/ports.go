package configports

import (
	"context"

	configdomain "github.com/czokomaster/czokomaster/internal/core/domain/config"
)

// Loader produces bootstrap settings from one source.
type Loader interface {
	Load(ctx context.Context) (configdomain.Snapshot, error)
	Name() string
}
