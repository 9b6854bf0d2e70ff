package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/czokomaster/czokomaster/internal/application/services"
	"github.com/czokomaster/czokomaster/internal/core/domain"
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Dispatcher *services.CommandDispatcher
	Collector  *services.UpdateCollector
	Log        *logrus.Entry
}

// NewRootCommand builds the operator command. Routing is positional: every
// argument, including ones that look like flags, is handed to the dispatcher.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   domain.ProjectName + " <plugin> <option>",
		Short: "Upgrade manager for the base system and its jails",
		Long: `czokomaster routes "<plugin> <action> [targets...]" to a plugin. Built-in
plugins manage python packages (pippy) and the ports tree (ports); executables
named czokomaster-plugin-<name> in the plugin directory add more.

The config file is TOML unless its name ends in .yaml or .yml, so string
values must be quoted: jails = "base, jail1".`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := domain.NewArgumentVector(append([]string{programPath()}, args...)...)
			container.Log.WithField("argv", []string(argv)).Debug("dispatching invocation")
			return container.Dispatcher.Dispatch(cmd.Context(), argv)
		},
	}
}

func programPath() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return domain.ProjectName
}

// Run executes cmd and maps its outcome to a process exit code. Requested exit
// statuses pass through; other errors are printed to stderr and exit 1.
func Run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)

	var status *domain.ExitStatus
	switch {
	case err == nil:
		return 0
	case errors.As(err, &status):
		return status.Code
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}
