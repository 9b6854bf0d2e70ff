// Package pippy upgrades python packages installed through pip on the base
// system and in jails, driven by the per-target update cache.
package pippy

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/czokomaster/czokomaster/internal/application/services"
	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
	cacheinfra "github.com/czokomaster/czokomaster/internal/infrastructure/cache"
	"github.com/czokomaster/czokomaster/internal/plugins"
)

const (
	Name    = "pippy"
	Version = "1.0"

	optionJails        = "jails"
	optionCacheDir     = "pippy_cachedir"
	optionUpgradeCmd   = "py_upgrade_cmd"
	optionRefreshCache = "update_after_upgrade"

	tag              = "[Python]"
	nothingToUpgrade = "Nothing to upgrade."
)

// Collector refreshes the update cache of the given targets.
type Collector interface {
	Collect(ctx context.Context, targets []string) error
}

// Plugin implements the pippy actions.
type Plugin struct {
	deps      plugins.Dependencies
	collector Collector
	meta      plugins.Meta
	log       *logrus.Entry
}

var _ ports.Plugin = (*Plugin)(nil)

// New creates the plugin. collector is used for the post-upgrade cache refresh.
func New(deps plugins.Dependencies, collector Collector) *Plugin {
	return &Plugin{
		deps:      deps,
		collector: collector,
		meta:      plugins.Meta{Name: Name, Version: Version},
		log:       deps.Logger(Name),
	}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Actions() ports.ActionSet {
	return ports.ActionSet{
		"version":        p.version,
		ports.HelpAction: p.help,
		"options":        p.options,
		"diff":           p.diff,
		"upgrade":        p.upgrade,
	}
}

func (p *Plugin) version(context.Context, domain.ArgumentVector) error {
	p.meta.PrintVersion(p.deps.Console)
	return nil
}

func (p *Plugin) help(context.Context, domain.ArgumentVector) error {
	p.meta.PrintVersion(p.deps.Console)
	c := p.deps.Console
	c.Println("This plugin upgrades the python packages installed through pip/easy_install. Usage:")
	c.Println()
	c.Printf("    # %s %s upgrade [all|base|jail1|jail2|...]\n\n", domain.ProjectName, Name)
	c.Println("or, to see what is to be upgraded:")
	c.Println()
	c.Printf("    # %s %s diff [all|base|jail1|jail2|...]\n", domain.ProjectName, Name)
	return domain.Exit(1)
}

func (p *Plugin) options(context.Context, domain.ArgumentVector) error {
	p.meta.PrintVersion(p.deps.Console)
	c := p.deps.Console
	c.Printf("Usage: %s %s <option>\n\n", domain.ProjectName, Name)
	c.Println("where the possible options include:")
	c.Println("- help - show a more detailed help message;")
	c.Println("- diff [all|base|jail1...] - show python packages that need upgrading;")
	c.Println("- upgrade [all|base|jail1...] - upgrade python packages;")
	c.Println("- options - show this message;")
	c.Println("- version - show the plugin version.")
	return domain.Exit(0)
}

func (p *Plugin) cache() (*cacheinfra.FileCache, error) {
	dir, err := p.deps.Config.String(Name, optionCacheDir)
	if err != nil {
		return nil, err
	}
	return cacheinfra.NewFileCache(dir), nil
}

func (p *Plugin) diff(ctx context.Context, argv domain.ArgumentVector) error {
	targets, err := p.deps.Normalizer.Normalize(Name, optionJails, argv)
	if err != nil {
		return err
	}
	cache, err := p.cache()
	if err != nil {
		return err
	}

	c := p.deps.Console
	var failures plugins.Failures
	for _, target := range plugins.Ordered(targets) {
		c.Printf("%s Available updates for %s:\n", c.Tag(tag), c.Target(domain.DisplayName(target)))

		records, err := cache.Read(target)
		if err != nil {
			failures.Add(target, err)
			c.Println()
			continue
		}
		if len(records) == 0 {
			c.Done(nothingToUpgrade)
		}
		for _, record := range records {
			line := record.Raw
			if record.Bump() == domain.BumpMajor {
				line += " (major)"
			}
			c.Pending(line)
		}
		c.Println()
	}

	failures.Report(c, p.log)
	return nil
}

func (p *Plugin) upgrade(ctx context.Context, argv domain.ArgumentVector) error {
	targets, err := p.deps.Normalizer.Normalize(Name, optionJails, argv)
	if err != nil {
		return err
	}
	cache, err := p.cache()
	if err != nil {
		return err
	}
	upgradeCmd, err := p.deps.Config.String(Name, optionUpgradeCmd)
	if err != nil {
		return err
	}
	jailExec, err := services.JailExec(p.deps.Config)
	if err != nil {
		return err
	}
	refresh, err := services.StringOr(p.deps.Config, Name, optionRefreshCache, "no")
	if err != nil {
		return err
	}

	var failures plugins.Failures
	for _, target := range plugins.Ordered(targets) {
		if err := ctx.Err(); err != nil {
			return err
		}
		failures.Add(target, p.upgradeTarget(ctx, cache, target, upgradeCmd, jailExec, services.Enabled(refresh)))
	}

	failures.Report(p.deps.Console, p.log)
	return nil
}

func (p *Plugin) upgradeTarget(ctx context.Context, cache *cacheinfra.FileCache, target, upgradeCmd, jailExec string, refresh bool) error {
	c := p.deps.Console
	c.SectionFor(c.Tag(tag)+" Upgrading py-packages in", domain.DisplayName(target))
	defer c.Println()

	records, err := cache.Read(target)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		c.Done(nothingToUpgrade)
		return nil
	}

	commands := make([]string, 0, len(records))
	for _, record := range records {
		commands = append(commands, services.CommandFor(jailExec, target, upgradeCmd+" "+record.Name))
	}
	p.log.WithField("target", target).WithField("packages", len(commands)).Debug("upgrading")

	upgradeErr := plugins.Stream(ctx, p.deps.Executor, commands...)

	if refresh && p.collector != nil {
		c.Info("Updating the cache file...")
		if err := p.collector.Collect(ctx, []string{target}); err != nil {
			return errors.Join(upgradeErr, fmt.Errorf("cache refresh: %w", err))
		}
		c.Done("Done.")
	}
	return upgradeErr
}
