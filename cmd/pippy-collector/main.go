package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/czokomaster/czokomaster/internal/interfaces/cli"
	"github.com/czokomaster/czokomaster/internal/interfaces/di"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container, err := di.NewContainer(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize collector: %v\n", err)
		os.Exit(1)
	}

	code := cli.Run(ctx, cli.NewCollectCommand(container.GetCLIContainer()), os.Stderr)
	cancel()
	os.Exit(code)
}
