package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czokomaster/czokomaster/internal/core/testfixtures"
)

func TestStringOr(t *testing.T) {
	config := testfixtures.NewConfigBuilder().With("pippy", "collect_cmd", "yolk -U --all").Build()

	value, err := StringOr(config, "pippy", "collect_cmd", DefaultCollectCommand)
	require.NoError(t, err)
	assert.Equal(t, "yolk -U --all", value)

	value, err = StringOr(config, "pippy", "missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", value)
}

func TestEnabled(t *testing.T) {
	for _, value := range []string{"yes", "YES", " true ", "on", "1"} {
		assert.True(t, Enabled(value), value)
	}
	for _, value := range []string{"", "no", "false", "off", "0", "maybe"} {
		assert.False(t, Enabled(value), value)
	}
}

func TestCommandFor(t *testing.T) {
	assert.Equal(t, "yolk -U", CommandFor("jexec", "base", "yolk -U"))
	assert.Equal(t, "jexec www yolk -U", CommandFor("jexec", "www", "yolk -U"))

	config := testfixtures.NewConfigBuilder().With("core", "jail_exec", "jexec -l").Build()
	jailExec, err := JailExec(config)
	require.NoError(t, err)
	assert.Equal(t, "jexec -l", jailExec)

	jailExec, err = JailExec(testfixtures.NewConfigBuilder().Build())
	require.NoError(t, err)
	assert.Equal(t, "jexec", jailExec)
}
