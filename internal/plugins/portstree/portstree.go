// Package portstree manages the FreeBSD ports tree of the base system and
// its jails. It is registered as the "ports" plugin.
package portstree

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/application/services"
	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
	"github.com/czokomaster/czokomaster/internal/plugins"
)

const (
	Name    = "ports"
	Version = "1.1"

	DefaultPortsnapCommand  = "portsnap fetch update"
	DefaultJailPortsCommand = "ezjail-admin update -P"
)

// Plugin implements the ports tree actions.
type Plugin struct {
	deps plugins.Dependencies
	meta plugins.Meta
	log  *logrus.Entry
}

var _ ports.Plugin = (*Plugin)(nil)

func New(deps plugins.Dependencies) *Plugin {
	return &Plugin{
		deps: deps,
		meta: plugins.Meta{Name: Name, Version: Version},
		log:  deps.Logger(Name),
	}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Actions() ports.ActionSet {
	return ports.ActionSet{
		"version":        p.version,
		ports.HelpAction: p.help,
		"options":        p.options,
		"update":         p.update,
		"upgrade":        p.upgrade,
		"diff":           p.diff,
	}
}

func (p *Plugin) version(context.Context, domain.ArgumentVector) error {
	p.meta.PrintVersion(p.deps.Console)
	return nil
}

func (p *Plugin) help(context.Context, domain.ArgumentVector) error {
	p.meta.PrintVersion(p.deps.Console)
	c := p.deps.Console
	usage := func(args string) {
		c.Printf("      # %s %s %s\n\n", domain.ProjectName, Name, args)
	}

	c.Println("This plugin manages the ports tree for both the base system and the jails. Usage:")
	c.Println()
	c.Println("  1) in order to see this help:")
	c.Println()
	usage("help")
	c.Println("  2) in order to see a short version of this help:")
	c.Println()
	usage("options")
	c.Println("  3) in order to see plugin version:")
	c.Println()
	usage("version")
	c.Println("  4) in order to update ports for both the base system and available jails:")
	c.Println()
	usage("update")
	c.Println("  5) in order to see all the packages that need upgrading:")
	c.Println()
	usage("diff all")
	c.Println("  or, to show the packages to upgrade only in the base system and jail named jail1:")
	c.Println()
	usage("diff base jail1")
	c.Println("  6) in order to upgrade all the systems listed in the config file:")
	c.Println()
	usage("upgrade all")
	c.Println("  or, to upgrade only the base system and jail named jail1:")
	c.Println()
	usage("upgrade base jail1")
	c.Println("  where 'base' stands for the base system.")
	return domain.Exit(1)
}

func (p *Plugin) options(context.Context, domain.ArgumentVector) error {
	p.meta.PrintVersion(p.deps.Console)
	c := p.deps.Console
	c.Printf("Usage: %s %s <option>\n\n", domain.ProjectName, Name)
	c.Println("where the possible options include:")
	c.Println("- help - show a more detailed help message;")
	c.Println("- update - update ports tree;")
	c.Println("- diff [all|base|jail1...] - show ports that need upgrading;")
	c.Println("- upgrade [all|base|jail1...] - upgrade packages;")
	c.Println("- options - show this message;")
	c.Println("- version - show the plugin version.")
	return domain.Exit(0)
}

func (p *Plugin) update(ctx context.Context, _ domain.ArgumentVector) error {
	portsnapCmd, err := services.StringOr(p.deps.Config, Name, "portsnap_cmd", DefaultPortsnapCommand)
	if err != nil {
		return err
	}
	jailPortsCmd, err := services.StringOr(p.deps.Config, Name, "jail_ports_cmd", DefaultJailPortsCommand)
	if err != nil {
		return err
	}

	c := p.deps.Console
	var failures plugins.Failures

	c.Section("Updating ports on the base system")
	failures.Add(domain.BaseTarget, plugins.Stream(ctx, p.deps.Executor, portsnapCmd))
	c.Println()

	c.Section("Updating ports for the jails")
	failures.Add("jails", plugins.Stream(ctx, p.deps.Executor, jailPortsCmd))
	c.Println()

	failures.Report(c, p.log)
	return nil
}

func (p *Plugin) upgrade(ctx context.Context, argv domain.ArgumentVector) error {
	targets, err := p.deps.Normalizer.Normalize(Name, "jails", argv)
	if err != nil {
		return err
	}
	upgradeCmd, err := p.deps.Config.String(Name, "ports_upgrade_cmd")
	if err != nil {
		return err
	}
	jailExec, err := services.JailExec(p.deps.Config)
	if err != nil {
		return err
	}

	c := p.deps.Console
	var failures plugins.Failures
	for _, target := range plugins.Ordered(targets) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if target == domain.BaseTarget {
			c.Section("Upgrading the base system")
		} else {
			c.SectionFor("Upgrading", target)
		}
		failures.Add(target, plugins.Stream(ctx, p.deps.Executor, services.CommandFor(jailExec, target, upgradeCmd)))
		c.Println()
	}

	failures.Report(c, p.log)
	return nil
}

func (p *Plugin) diff(ctx context.Context, argv domain.ArgumentVector) error {
	targets, err := p.deps.Normalizer.Normalize(Name, "jails", argv)
	if err != nil {
		return err
	}
	showCmd, err := p.deps.Config.String(Name, "show_updates_cmd")
	if err != nil {
		return err
	}
	jailExec, err := services.JailExec(p.deps.Config)
	if err != nil {
		return err
	}

	c := p.deps.Console
	var failures plugins.Failures
	for _, target := range plugins.Ordered(targets) {
		c.Printf("Available updates for %s:\n", c.Target(domain.DisplayName(target)))

		output, err := plugins.Capture(ctx, p.deps.Executor, services.CommandFor(jailExec, target, showCmd))
		failures.Add(target, err)

		lines := pendingLines(output)
		if len(lines) == 0 && err == nil {
			c.Done("None")
		}
		for _, line := range lines {
			c.Pending(line)
		}
		c.Println()
	}

	failures.Report(c, p.log)
	return nil
}

func pendingLines(output []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
