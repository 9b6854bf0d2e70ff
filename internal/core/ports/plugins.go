package ports

import (
	"context"
	"maps"
	"slices"

	"github.com/czokomaster/czokomaster/internal/core/domain"
)

// HelpAction is the action every plugin must provide. The dispatcher falls back
// to it whenever the requested action is missing or unknown.
const HelpAction = "help"

// Action is a named plugin operation. It receives the full argument vector.
type Action func(ctx context.Context, argv domain.ArgumentVector) error

// ActionSet maps action names to handlers.
type ActionSet map[string]Action

// Lookup returns the handler registered under name.
func (s ActionSet) Lookup(name string) (Action, bool) {
	action, ok := s[name]
	return action, ok && action != nil
}

// Names returns the sorted action names.
func (s ActionSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Plugin is a self-contained unit exposing named actions.
type Plugin interface {
	// Name returns the plugin identifier used on the command line
	Name() string

	// Actions returns the plugin's action table; it must contain HelpAction
	Actions() ActionSet
}

// PluginInfo describes an external plugin found on disk.
type PluginInfo struct {
	Name    string
	Version string
	Path    string
	Actions []string
}

// PluginManifest is the optional YAML file shipped next to an external plugin.
type PluginManifest struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Description string   `yaml:"description"`
	Actions     []string `yaml:"actions"`
}

// PluginDiscovery finds external plugins.
type PluginDiscovery interface {
	DiscoverPlugins(ctx context.Context) ([]PluginInfo, error)
}
