package external

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/ports"
	"github.com/czokomaster/czokomaster/internal/core/testfixtures"
)

func TestPlugin_Actions(t *testing.T) {
	p := New(ports.PluginInfo{Name: "zfs", Path: "/plugins/czokomaster-plugin-zfs", Actions: []string{"snapshot", ""}}, testfixtures.NewRecordingExecutor(), nil)

	assert.Equal(t, "zfs", p.Name())
	assert.Equal(t, []string{"help", "snapshot"}, p.Actions().Names())
}

func TestPlugin_RunsBinary(t *testing.T) {
	executor := testfixtures.NewRecordingExecutor()
	p := New(ports.PluginInfo{Name: "zfs", Path: "/opt/czoko plugins/czokomaster-plugin-zfs", Actions: []string{"snapshot"}}, executor, nil)

	action, ok := p.Actions().Lookup("snapshot")
	require.True(t, ok)
	require.NoError(t, action(context.Background(), testfixtures.Argv("zfs", "snapshot", "base", "tank/www")))

	assert.Equal(t, []string{`"/opt/czoko plugins/czokomaster-plugin-zfs" snapshot base tank/www`}, executor.Streamed())
}

func TestPlugin_ExitCodePropagates(t *testing.T) {
	executor := testfixtures.NewRecordingExecutor().WithFailure("/p/czokomaster-plugin-zfs help", 1, "")
	p := New(ports.PluginInfo{Name: "zfs", Path: "/p/czokomaster-plugin-zfs"}, executor, nil)

	action, _ := p.Actions().Lookup("help")
	err := action(context.Background(), testfixtures.Argv("zfs", "bogus"))

	var status *domain.ExitStatus
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 1, status.Code)
}

func TestPlugin_SpawnFailure(t *testing.T) {
	boom := errors.New("exec format error")
	p := New(ports.PluginInfo{Name: "zfs", Path: "/p/zfs"}, testfixtures.NewRecordingExecutor().WithError(boom), nil)

	action, _ := p.Actions().Lookup("help")
	assert.ErrorIs(t, action(context.Background(), testfixtures.Argv("zfs", "")), boom)
}

func TestFactory(t *testing.T) {
	factory := Factory(testfixtures.NewRecordingExecutor(), nil)
	plugin := factory(ports.PluginInfo{Name: "jails"})
	assert.Equal(t, "jails", plugin.Name())
}
