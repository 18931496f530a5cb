package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentx-labs/libreg/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyRoots lists the search roots, highest priority first.
	KeyRoots = "roots"
	// KeyLogLevel is one of debug, info, warn, error.
	KeyLogLevel = "log_level"

	// DefaultRoot is used when no roots are configured.
	DefaultRoot     = "node_modules"
	DefaultLogLevel = "warn"
)

// Dir returns the path to the config directory (~/.libreg/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.libreg/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Roots returns the configured search roots as absolute paths. The value may
// be a YAML list or a single string separated by the OS path-list separator
// (the form LIBREG_ROOTS takes). With nothing configured it returns
// ./node_modules.
func Roots() ([]string, error) {
	var raw []string
	switch v := viper.Get(KeyRoots).(type) {
	case nil:
	case string:
		raw = filepath.SplitList(v)
	default:
		raw = viper.GetStringSlice(KeyRoots)
	}

	var roots []string
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			roots = append(roots, r)
		}
	}
	if len(roots) == 0 {
		roots = []string{DefaultRoot}
	}
	return Absolute(roots)
}

// Absolute expands a leading "~" and makes each path absolute.
func Absolute(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "~" || strings.HasPrefix(p, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("expanding %s: %w", p, err)
			}
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving root %s: %w", p, err)
		}
		out = append(out, abs)
	}
	return out, nil
}

// LogLevel returns the configured log level.
func LogLevel() string {
	if v := viper.GetString(KeyLogLevel); v != "" {
		return v
	}
	return DefaultLogLevel
}
