package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
	cacheinfra "github.com/czokomaster/czokomaster/internal/infrastructure/cache"
)

// Defaults for the python package collector.
const (
	CollectorSection        = "pippy"
	DefaultCollectCommand   = "yolk -U"
	DefaultCollectorWorkers = 4
)

// UpdateCollector refreshes the per-target update cache by running the
// configured listing command on each target and storing its output.
// Targets are independent, so they are collected in parallel.
type UpdateCollector struct {
	config  ports.ConfigStore
	exec    ports.Executor
	section string
	workers int
	log     *logrus.Entry
}

func NewUpdateCollector(config ports.ConfigStore, exec ports.Executor, log *logrus.Entry) *UpdateCollector {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &UpdateCollector{
		config:  config,
		exec:    exec,
		section: CollectorSection,
		workers: DefaultCollectorWorkers,
		log:     log,
	}
}

// WithWorkers limits how many targets are collected at once.
func (c *UpdateCollector) WithWorkers(n int) *UpdateCollector {
	if n > 0 {
		c.workers = n
	}
	return c
}

// Collect refreshes the cache for targets, or for the configured jails list
// when targets is empty. Every target is attempted; failures are joined.
func (c *UpdateCollector) Collect(ctx context.Context, targets []string) error {
	if len(targets) == 0 {
		configured, err := c.config.Strings(c.section, "jails")
		if err != nil {
			return err
		}
		targets = configured
	}
	targets = uniqueTargets(targets)

	cacheDir, err := c.config.String(c.section, "pippy_cachedir")
	if err != nil {
		return err
	}
	collectCmd, err := StringOr(c.config, c.section, "collect_cmd", DefaultCollectCommand)
	if err != nil {
		return err
	}
	jailExec, err := JailExec(c.config)
	if err != nil {
		return err
	}

	cache := cacheinfra.NewFileCache(cacheDir)
	if err := cache.Ensure(); err != nil {
		return err
	}

	errs := make([]error, len(targets))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, target := range targets {
		g.Go(func() error {
			errs[i] = c.collectOne(ctx, cache, target, CommandFor(jailExec, target, collectCmd))
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (c *UpdateCollector) collectOne(ctx context.Context, cache *cacheinfra.FileCache, target, command string) error {
	log := c.log.WithField("target", target)

	results, err := c.exec.Execute(ctx, domain.CaptureRequest(command))
	if err != nil {
		return fmt.Errorf("%s: %w", target, err)
	}
	if len(results) == 0 {
		return fmt.Errorf("%s: no result for %q", target, command)
	}

	result := results[0]
	if result.Err != nil {
		return fmt.Errorf("%s: %w", target, result.Err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%s: %q exited with code %d: %s", target, command, result.ExitCode, strings.TrimSpace(string(result.Stderr)))
	}

	if err := cache.Write(target, result.Stdout); err != nil {
		return fmt.Errorf("%s: %w", target, err)
	}
	log.WithField("bytes", len(result.Stdout)).Debug("cache refreshed")
	return nil
}

func uniqueTargets(targets []string) []string {
	seen := make(map[string]bool, len(targets))
	unique := make([]string, 0, len(targets))
	for _, target := range targets {
		if seen[target] {
			continue
		}
		seen[target] = true
		unique = append(unique, target)
	}
	return unique
}
