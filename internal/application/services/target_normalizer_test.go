package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/testfixtures"
)

func TestTargetNormalizer_Normalize(t *testing.T) {
	config := testfixtures.NewConfigBuilder().
		WithList("pippy", "jails", "jail1", "jail2").
		Build()

	tests := []struct {
		name     string
		argv     domain.ArgumentVector
		expected domain.TargetSet
	}{
		{
			name:     "explicit_targets",
			argv:     testfixtures.Argv("pippy", "diff", "base", "jail1"),
			expected: domain.TargetSet{"base", "jail1"},
		},
		{
			name:     "all_expands_to_configured_list",
			argv:     testfixtures.Argv("pippy", "diff", "all"),
			expected: domain.TargetSet{"jail1", "jail2"},
		},
		{
			name:     "all_anywhere_wins",
			argv:     testfixtures.Argv("pippy", "diff", "base", "all", "jail9"),
			expected: domain.TargetSet{"jail1", "jail2"},
		},
		{
			name:     "duplicates_kept",
			argv:     testfixtures.Argv("pippy", "diff", "jail1", "jail1"),
			expected: domain.TargetSet{"jail1", "jail1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			helpShown := false
			normalizer := NewTargetNormalizer(config, func() { helpShown = true })

			targets, err := normalizer.Normalize("pippy", "jails", tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, targets)
			assert.False(t, helpShown)
		})
	}
}

func TestTargetNormalizer_NoTargets(t *testing.T) {
	helpShown := 0
	normalizer := NewTargetNormalizer(testfixtures.NewConfigBuilder().Build(), func() { helpShown++ })

	targets, err := normalizer.Normalize("pippy", "jails", testfixtures.Argv("pippy", "diff"))
	assert.ErrorIs(t, err, domain.ErrNoTargets)
	assert.Nil(t, targets)
	assert.Equal(t, 1, helpShown)
}

func TestTargetNormalizer_MissingList(t *testing.T) {
	normalizer := NewTargetNormalizer(testfixtures.NewConfigBuilder().Build(), nil)

	_, err := normalizer.Normalize("pippy", "jails", testfixtures.Argv("pippy", "diff", "all"))
	assert.ErrorIs(t, err, domain.ErrConfigKeyNotFound)
}
