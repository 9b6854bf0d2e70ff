// Package external adapts executables found in the plugin directory to the
// plugin interface.
package external

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
	"github.com/czokomaster/czokomaster/internal/infrastructure/process"
)

// Plugin runs "<binary> <action> <args...>" on the terminal for each action.
type Plugin struct {
	info ports.PluginInfo
	exec ports.Executor
	log  *logrus.Entry
}

var _ ports.Plugin = (*Plugin)(nil)

func New(info ports.PluginInfo, exec ports.Executor, log *logrus.Entry) *Plugin {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Plugin{info: info, exec: exec, log: log.WithField("plugin", info.Name)}
}

// Factory returns a constructor usable by the plugin registry.
func Factory(exec ports.Executor, log *logrus.Entry) func(ports.PluginInfo) ports.Plugin {
	return func(info ports.PluginInfo) ports.Plugin {
		return New(info, exec, log)
	}
}

func (p *Plugin) Name() string { return p.info.Name }

// Actions lists the manifest actions; help is always present.
func (p *Plugin) Actions() ports.ActionSet {
	actions := ports.ActionSet{ports.HelpAction: p.action(ports.HelpAction)}
	for _, name := range p.info.Actions {
		if name != "" {
			actions[name] = p.action(name)
		}
	}
	return actions
}

func (p *Plugin) action(name string) ports.Action {
	return func(ctx context.Context, argv domain.ArgumentVector) error {
		args := append([]string{p.info.Path, name}, argv.Tail()...)
		command := process.JoinCommandLine(args...)
		p.log.WithField("action", name).Debug("running external plugin")

		results, err := p.exec.Execute(ctx, domain.StreamRequest(command))
		if err != nil {
			return err
		}
		for _, result := range results {
			if result.Err != nil {
				return result.Err
			}
			if result.ExitCode != 0 {
				return domain.Exit(result.ExitCode)
			}
		}
		return nil
	}
}
