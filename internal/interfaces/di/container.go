package di

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/application/services"
	"github.com/czokomaster/czokomaster/internal/core/ports"
	configinfra "github.com/czokomaster/czokomaster/internal/infrastructure/config"
	"github.com/czokomaster/czokomaster/internal/infrastructure/logging"
	"github.com/czokomaster/czokomaster/internal/infrastructure/plugins/discovery"
	"github.com/czokomaster/czokomaster/internal/infrastructure/process"
	"github.com/czokomaster/czokomaster/internal/interfaces/cli"
	"github.com/czokomaster/czokomaster/internal/plugins"
	"github.com/czokomaster/czokomaster/internal/plugins/example"
	"github.com/czokomaster/czokomaster/internal/plugins/external"
	"github.com/czokomaster/czokomaster/internal/plugins/pippy"
	"github.com/czokomaster/czokomaster/internal/plugins/portstree"
	"github.com/czokomaster/czokomaster/internal/ui"
)

// Container holds all application dependencies
type Container struct {
	// Configuration
	Settings configinfra.Settings
	Config   *configinfra.FileStore

	// Infrastructure
	Executor  *process.Executor
	Discovery *discovery.FileSystemPluginDiscovery
	Console   *ui.Console

	// Application services
	Banner     *services.Banner
	Registry   *services.PluginRegistry
	Normalizer *services.TargetNormalizer
	Dispatcher *services.CommandDispatcher
	Collector  *services.UpdateCollector

	// CLI
	CLIContainer *cli.CLIContainer

	// Logger
	Logger *logrus.Logger
	Log    *logrus.Entry
}

// Streams are the standard streams the container wires into output and commands.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewContainer creates and configures the dependency injection container
func NewContainer(ctx context.Context) (*Container, error) {
	return NewContainerWithStreams(ctx, Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
}

// NewContainerWithStreams builds the container around the given streams.
func NewContainerWithStreams(ctx context.Context, streams Streams) (*Container, error) {
	container := &Container{}

	if err := container.initializeComponents(ctx, streams); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	return container, nil
}

// initializeComponents initializes all components with proper dependencies
func (c *Container) initializeComponents(ctx context.Context, streams Streams) error {
	// 1. Resolve bootstrap settings
	settings, store, err := configinfra.NewUnifiedLoader().Load(ctx)
	if err != nil {
		return err
	}
	c.Settings = settings
	c.Config = store

	// 2. Logger
	c.Logger = logging.NewLogger(streams.Stderr, settings.LogLevel)
	c.Log = logging.NewRunEntry(c.Logger)
	for _, key := range slices.Sorted(maps.Keys(settings.Sources)) {
		entry := settings.Sources[key]
		c.Log.WithFields(logrus.Fields{
			"key":    key,
			"value":  entry.Value,
			"source": entry.Source,
		}).Debug("setting resolved")
	}

	// 3. Infrastructure
	c.Executor = process.NewExecutorWithOptions(streams.Stdin, streams.Stdout, streams.Stderr, "", nil, c.Log.WithField("component", "executor"))
	c.Console = ui.NewConsole(streams.Stdout)

	// 4. Application services
	c.Banner = services.NewBanner(c.Console)
	c.Normalizer = services.NewTargetNormalizer(c.Config, c.Banner.Help)
	c.Collector = services.NewUpdateCollector(c.Config, c.Executor, c.Log.WithField("component", "collector"))

	var pluginDiscovery ports.PluginDiscovery
	if settings.PluginDir != "" {
		c.Discovery = discovery.NewFileSystemPluginDiscovery(settings.PluginDir, c.Log)
		pluginDiscovery = c.Discovery
	}
	c.Registry = services.NewPluginRegistry(pluginDiscovery, external.Factory(c.Executor, c.Log), c.Log)
	c.registerBuiltins()

	c.Dispatcher = services.NewCommandDispatcher(c.Registry, c.Banner, c.Log.WithField("component", "dispatcher"))

	// 5. CLI
	c.CLIContainer = &cli.CLIContainer{
		Dispatcher: c.Dispatcher,
		Collector:  c.Collector,
		Log:        c.Log,
	}

	return nil
}

func (c *Container) registerBuiltins() {
	deps := plugins.Dependencies{
		Config:     c.Config,
		Executor:   c.Executor,
		Normalizer: c.Normalizer,
		Console:    c.Console,
		Log:        c.Log,
	}

	c.Registry.Register(pippy.New(deps, c.Collector))
	c.Registry.Register(portstree.New(deps))
	c.Registry.Register(example.New(deps))
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}
