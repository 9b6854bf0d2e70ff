package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/czokomaster/czokomaster/internal/core/ports"
)

// PluginPrefix marks executables that provide an external plugin.
const PluginPrefix = "czokomaster-plugin-"

// FileSystemPluginDiscovery implements plugin discovery by scanning a directory
type FileSystemPluginDiscovery struct {
	directory string
	log       *logrus.Entry
}

var _ ports.PluginDiscovery = (*FileSystemPluginDiscovery)(nil)

// NewFileSystemPluginDiscovery creates a new filesystem-based plugin discovery
func NewFileSystemPluginDiscovery(directory string, log *logrus.Entry) *FileSystemPluginDiscovery {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &FileSystemPluginDiscovery{
		directory: expandPath(directory),
		log:       log.WithField("component", "plugin_discovery"),
	}
}

// Directory returns the scanned directory
func (d *FileSystemPluginDiscovery) Directory() string {
	return d.directory
}

// DiscoverPlugins returns every valid plugin binary in the directory, in name
// order. A directory that cannot be read is an error.
func (d *FileSystemPluginDiscovery) DiscoverPlugins(ctx context.Context) ([]ports.PluginInfo, error) {
	d.log.WithField("directory", d.directory).Debug("scanning for plugins")

	entries, err := os.ReadDir(d.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin directory: %w", err)
	}

	var discovered []ports.PluginInfo
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), PluginPrefix) {
			continue
		}

		pluginPath := filepath.Join(d.directory, entry.Name())
		info, err := d.ValidatePlugin(pluginPath)
		if err != nil {
			d.log.WithError(err).WithField("path", pluginPath).Warn("invalid plugin")
			continue
		}

		d.log.WithField("plugin", info.Name).WithField("version", info.Version).Debug("found plugin")
		discovered = append(discovered, *info)
	}

	return discovered, nil
}

// ValidatePlugin checks that pluginPath is an executable file and reads its
// optional manifest
func (d *FileSystemPluginDiscovery) ValidatePlugin(pluginPath string) (*ports.PluginInfo, error) {
	fileInfo, err := os.Stat(pluginPath)
	if err != nil {
		return nil, fmt.Errorf("plugin file not found: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("plugin is not a regular file: %s", pluginPath)
	}
	if fileInfo.Mode()&0111 == 0 {
		return nil, fmt.Errorf("plugin file is not executable: %s", pluginPath)
	}

	name := extractPluginNameFromPath(pluginPath)
	if name == "" {
		return nil, fmt.Errorf("plugin file has no name: %s", pluginPath)
	}

	info := &ports.PluginInfo{
		Name:    name,
		Version: "unknown",
		Path:    pluginPath,
	}

	manifest, err := loadManifest(getManifestPath(pluginPath))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return info, nil
	case err != nil:
		return nil, err
	}

	if manifest.Name != "" && manifest.Name != name {
		return nil, fmt.Errorf("manifest names plugin %q, binary provides %q", manifest.Name, name)
	}
	if manifest.Version != "" {
		info.Version = manifest.Version
	}
	info.Actions = manifest.Actions
	return info, nil
}

// loadManifest loads plugin manifest from YAML file
func loadManifest(manifestPath string) (*ports.PluginManifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}

	var manifest ports.PluginManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", manifestPath, err)
	}
	return &manifest, nil
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// getManifestPath returns the expected manifest path for a plugin binary
func getManifestPath(pluginPath string) string {
	return filepath.Join(filepath.Dir(pluginPath), extractPluginNameFromPath(pluginPath)+".manifest.yaml")
}

// extractPluginNameFromPath extracts plugin name from file path
func extractPluginNameFromPath(pluginPath string) string {
	name := strings.TrimPrefix(filepath.Base(pluginPath), PluginPrefix)

	// Remove any file extension
	if idx := strings.LastIndex(name, "."); idx != -1 {
		name = name[:idx]
	}
	return name
}
