package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and resets the global viper instance.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LIBREG_ROOTS", "")
	t.Setenv("LIBREG_LOG_LEVEL", "")
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestPaths(t *testing.T) {
	home := isolate(t)

	assert.Equal(t, filepath.Join(home, ".libreg"), Dir())
	assert.Equal(t, filepath.Join(home, ".libreg", "config.yaml"), FilePath())
}

func TestRootsDefault(t *testing.T) {
	isolate(t)
	Load()

	roots, err := Roots()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(wd, DefaultRoot)}, roots)
}

func TestRootsFromFileList(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".libreg"), 0755))
	require.NoError(t, os.WriteFile(FilePath(), []byte("roots:\n  - /srv/vendor\n  - ~/libs\nlog_level: debug\n"), 0644))
	Load()

	roots, err := Roots()
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/vendor", filepath.Join(home, "libs")}, roots)
	assert.Equal(t, "debug", LogLevel())
}

func TestRootsFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("LIBREG_ROOTS", strings.Join([]string{"/a", "/b"}, string(os.PathListSeparator)))
	Load()

	roots, err := Roots()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, roots)
}

func TestSetPersists(t *testing.T) {
	isolate(t)
	Load()

	require.NoError(t, Set(KeyLogLevel, "info"))
	assert.FileExists(t, FilePath())

	viper.Reset()
	Load()
	assert.Equal(t, "info", Get(KeyLogLevel))
}

func TestLogLevelDefault(t *testing.T) {
	isolate(t)
	Load()

	assert.Equal(t, DefaultLogLevel, LogLevel())
}
