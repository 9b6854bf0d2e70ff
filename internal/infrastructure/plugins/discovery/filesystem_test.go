package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czokomaster/czokomaster/internal/core/ports"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	require.NoError(t, os.Chmod(path, mode))
}

func TestFileSystemPluginDiscovery_DiscoverPlugins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "czokomaster-plugin-zfs"), "#!/bin/sh\n", 0755)
	writeFile(t, filepath.Join(dir, "zfs.manifest.yaml"), "name: zfs\nversion: 0.3.0\nactions:\n  - snapshot\n  - prune\n", 0644)
	writeFile(t, filepath.Join(dir, "czokomaster-plugin-certs.sh"), "#!/bin/sh\n", 0755)
	writeFile(t, filepath.Join(dir, "czokomaster-plugin-noexec"), "#!/bin/sh\n", 0644)
	writeFile(t, filepath.Join(dir, "unrelated-tool"), "#!/bin/sh\n", 0755)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "czokomaster-plugin-dir"), 0755))

	discovery := NewFileSystemPluginDiscovery(dir, nil)
	plugins, err := discovery.DiscoverPlugins(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []ports.PluginInfo{
		{Name: "certs", Version: "unknown", Path: filepath.Join(dir, "czokomaster-plugin-certs.sh")},
		{Name: "zfs", Version: "0.3.0", Path: filepath.Join(dir, "czokomaster-plugin-zfs"), Actions: []string{"snapshot", "prune"}},
	}, plugins)
}

func TestFileSystemPluginDiscovery_Stable(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "a", "c"} {
		writeFile(t, filepath.Join(dir, PluginPrefix+name), "#!/bin/sh\n", 0755)
	}

	discovery := NewFileSystemPluginDiscovery(dir, nil)
	first, err := discovery.DiscoverPlugins(context.Background())
	require.NoError(t, err)
	second, err := discovery.DiscoverPlugins(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestFileSystemPluginDiscovery_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "broken_manifest", manifest: "name: [zfs\n"},
		{name: "manifest_name_mismatch", manifest: "name: other\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "czokomaster-plugin-zfs"), "#!/bin/sh\n", 0755)
			writeFile(t, filepath.Join(dir, "zfs.manifest.yaml"), tt.manifest, 0644)

			plugins, err := NewFileSystemPluginDiscovery(dir, nil).DiscoverPlugins(context.Background())
			require.NoError(t, err)
			assert.Empty(t, plugins)
		})
	}
}

func TestFileSystemPluginDiscovery_UnreadableDirectory(t *testing.T) {
	discovery := NewFileSystemPluginDiscovery(filepath.Join(t.TempDir(), "missing"), nil)

	plugins, err := discovery.DiscoverPlugins(context.Background())
	require.Error(t, err)
	assert.Nil(t, plugins)
	assert.Contains(t, err.Error(), "failed to read plugin directory")
}

func TestExtractPluginNameFromPath(t *testing.T) {
	assert.Equal(t, "zfs", extractPluginNameFromPath("/usr/local/libexec/czokomaster/czokomaster-plugin-zfs"))
	assert.Equal(t, "certs", extractPluginNameFromPath("czokomaster-plugin-certs.sh"))
	assert.Equal(t, "/p/zfs.manifest.yaml", getManifestPath("/p/czokomaster-plugin-zfs"))
}
