package ports

import (
	"context"

	"github.com/czokomaster/czokomaster/internal/core/domain"
)

// Executor runs external command lines.
type Executor interface {
	// Execute runs the request. Stream mode returns one Result per command
	// without output; capture mode returns at most one Result.
	Execute(ctx context.Context, req domain.ExecutionRequest) ([]domain.Result, error)
}
