package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
)

// CommandDispatcher routes an argument vector to a meta command or a plugin action.
type CommandDispatcher struct {
	registry *PluginRegistry
	banner   *Banner
	log      *logrus.Entry
}

func NewCommandDispatcher(registry *PluginRegistry, banner *Banner, log *logrus.Entry) *CommandDispatcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &CommandDispatcher{registry: registry, banner: banner, log: log}
}

// Dispatch handles one invocation.
//
// Unknown plugins and the help keyword both show the top-level help. A missing
// or unknown action falls back to the plugin's help action with argv unchanged.
// Usage errors raised by actions are recovered here; every other error,
// including *domain.ExitStatus, is returned to the caller.
func (d *CommandDispatcher) Dispatch(ctx context.Context, argv domain.ArgumentVector) error {
	plugins, err := d.registry.Load(ctx)
	if err != nil {
		return err
	}

	name, ok := argv.Plugin()
	if !ok {
		d.log.Debug("no plugin given, showing help")
		d.banner.Help()
		return nil
	}

	switch name {
	case CommandVersion:
		d.banner.Version()
		return nil
	case CommandPlugins:
		d.banner.Plugins(SortedNames(plugins))
		return nil
	}

	plugin, known := plugins[name]
	if name == CommandHelp || !known {
		d.log.WithField("plugin", name).Debug("help requested or unknown plugin")
		d.banner.Help()
		return nil
	}

	return d.trigger(ctx, plugin, argv)
}

func (d *CommandDispatcher) trigger(ctx context.Context, plugin ports.Plugin, argv domain.ArgumentVector) error {
	actions := plugin.Actions()
	log := d.log.WithField("plugin", plugin.Name())

	actionName, hasAction := argv.Action()
	action, found := actions.Lookup(actionName)
	if !hasAction || !found {
		log.WithField("action", actionName).Debug("falling back to plugin help")
		action, _ = actions.Lookup(ports.HelpAction)
	} else {
		log.WithField("action", actionName).Debug("dispatching")
	}

	err := action(ctx, argv)
	if errors.Is(err, domain.ErrNoTargets) {
		return nil
	}
	return err
}
