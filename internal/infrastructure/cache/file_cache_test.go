package cacheinfra

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFileCache_WriteRead(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "pippy"))

	require.NoError(t, cache.Write("alpha", []byte("\n  Django 1.3 (1.4)\n  pkgX 1.0 (1.1)\n\n")))

	data, err := os.ReadFile(filepath.Join(cache.Dir(), "alpha"))
	require.NoError(t, err)
	assert.Equal(t, "Django 1.3 (1.4)\npkgX 1.0 (1.1)", string(data))

	records, err := cache.Read("alpha")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Django", records[0].Name)
	assert.Equal(t, "1.1", records[1].Available)
}

func TestFileCache_ConcurrentWritesSameTarget(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = cache.Write("www", []byte("pkgX 1.0 (1.1)\n"))
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	entries, err := os.ReadDir(cache.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(cache.Dir(), "www"))
	require.NoError(t, err)
	assert.Equal(t, "pkgX 1.0 (1.1)", string(data))
}

func TestFileCache_EnsureCreatesPrivateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	cache := NewFileCache(dir)

	require.NoError(t, cache.Ensure())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestFileCache_EmptyFileHasNoRecords(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	require.NoError(t, cache.Write("base", nil))

	records, err := cache.Read("base")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileCache_MissingTarget(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	_, err := cache.Read("ghost")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileCache_RejectsPathTargets(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	for _, target := range []string{"", ".", "..", "../etc", "a/b"} {
		_, err := cache.Path(target)
		assert.Error(t, err, target)
	}
}

func TestNormalizeOutput_NoLeadingWhitespace(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.StringMatching(`[ \t]{0,3}[a-z0-9.() ]{0,10}`)).Draw(t, "lines")
		out := NormalizeOutput([]byte(strings.Join(lines, "\n")))

		for _, line := range strings.Split(string(out), "\n") {
			if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
				t.Fatalf("leading whitespace kept in %q", line)
			}
		}
	})
}
