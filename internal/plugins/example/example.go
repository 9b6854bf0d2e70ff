// Package example is the template new built-in plugins start from.
//
// Every action receives the full argument vector:
//
//	argv[0]  program path
//	argv[1]  plugin name ("example")
//	argv[2]  action name ("some_function", "help", ...)
//	argv[3:] action specific arguments
package example

import (
	"context"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
	"github.com/czokomaster/czokomaster/internal/plugins"
)

const (
	Name    = "example"
	Version = "0.1-r1"
)

type Plugin struct {
	deps plugins.Dependencies
	meta plugins.Meta
}

var _ ports.Plugin = (*Plugin)(nil)

func New(deps plugins.Dependencies) *Plugin {
	return &Plugin{deps: deps, meta: plugins.Meta{Name: Name, Version: Version}}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Actions() ports.ActionSet {
	return ports.ActionSet{
		"version":        p.version,
		ports.HelpAction: p.help,
		"some_function":  p.someFunction,
	}
}

func (p *Plugin) version(context.Context, domain.ArgumentVector) error {
	p.meta.PrintVersion(p.deps.Console)
	return nil
}

func (p *Plugin) help(context.Context, domain.ArgumentVector) error {
	p.meta.PrintVersion(p.deps.Console)
	p.deps.Console.Println("Here comes the help how to use the plugin.")
	return nil
}

func (p *Plugin) someFunction(context.Context, domain.ArgumentVector) error {
	a, b := 2, 50
	p.deps.Console.Printf("This function prints some basic math: %d\n", a*b)
	return nil
}
