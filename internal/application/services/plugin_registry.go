package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/core/ports"
)

// Meta commands handled by the dispatcher itself; no plugin may use these names.
const (
	CommandVersion = "version"
	CommandPlugins = "plugins"
	CommandHelp    = "help"
)

// PluginFactory turns a discovered external plugin into a dispatchable one.
type PluginFactory func(info ports.PluginInfo) ports.Plugin

// PluginRegistry knows every plugin the dispatcher can route to: the built-in
// plugins registered at startup plus whatever the discovery finds on disk.
type PluginRegistry struct {
	builtins  map[string]ports.Plugin
	discovery ports.PluginDiscovery
	factory   PluginFactory
	log       *logrus.Entry
}

// NewPluginRegistry creates a registry. discovery may be nil when no external
// plugin location is configured.
func NewPluginRegistry(discovery ports.PluginDiscovery, factory PluginFactory, log *logrus.Entry) *PluginRegistry {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &PluginRegistry{
		builtins:  make(map[string]ports.Plugin),
		discovery: discovery,
		factory:   factory,
		log:       log,
	}
}

// Register adds a built-in plugin. It panics if the name is taken or reserved,
// or if the plugin has no help action.
func (r *PluginRegistry) Register(p ports.Plugin) {
	name := p.Name()
	if err := validatePlugin(p); err != nil {
		panic(err.Error())
	}
	if _, exists := r.builtins[name]; exists {
		panic(fmt.Sprintf("plugin %s already registered", name))
	}
	r.builtins[name] = p
}

// Load scans for plugins and returns them keyed by name. Failing to read the
// external plugin location is fatal for the caller.
func (r *PluginRegistry) Load(ctx context.Context) (map[string]ports.Plugin, error) {
	plugins := make(map[string]ports.Plugin, len(r.builtins))
	for name, p := range r.builtins {
		plugins[name] = p
	}

	if r.discovery == nil || r.factory == nil {
		return plugins, nil
	}

	infos, err := r.discovery.DiscoverPlugins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover plugins: %w", err)
	}

	for _, info := range infos {
		log := r.log.WithField("plugin", info.Name).WithField("path", info.Path)
		if _, exists := plugins[info.Name]; exists {
			log.Warn("external plugin shadowed by an existing plugin, skipping")
			continue
		}
		p := r.factory(info)
		if err := validatePlugin(p); err != nil {
			log.WithError(err).Warn("invalid external plugin, skipping")
			continue
		}
		plugins[info.Name] = p
		log.WithField("actions", p.Actions().Names()).Debug("external plugin loaded")
	}

	return plugins, nil
}

// ListPlugins returns the sorted plugin identifiers.
func (r *PluginRegistry) ListPlugins(ctx context.Context) ([]string, error) {
	plugins, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return SortedNames(plugins), nil
}

// SortedNames returns the keys of plugins in lexicographic order.
func SortedNames(plugins map[string]ports.Plugin) []string {
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validatePlugin(p ports.Plugin) error {
	name := p.Name()
	switch name {
	case "":
		return fmt.Errorf("plugin name cannot be empty")
	case CommandVersion, CommandPlugins, CommandHelp:
		return fmt.Errorf("plugin name %s is reserved", name)
	}
	if _, ok := p.Actions().Lookup(ports.HelpAction); !ok {
		return fmt.Errorf("plugin %s has no %s action", name, ports.HelpAction)
	}
	return nil
}
