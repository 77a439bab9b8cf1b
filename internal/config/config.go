package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mikrus-labs/mikrus/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyOutput       = "output"
	KeyTemplate     = "template"
	KeyAPIURL       = "api_url"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyTemplatesDir = "templates_dir"
)

// Defaults for every known key.
const (
	DefaultOutput    = "models"
	DefaultTemplate  = "model"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "auto"
)

func defaults() map[string]string {
	return map[string]string{
		KeyOutput:       DefaultOutput,
		KeyTemplate:     DefaultTemplate,
		KeyAPIURL:       branding.APIURL(),
		KeyLogLevel:     DefaultLogLevel,
		KeyLogFormat:    DefaultLogFormat,
		KeyTemplatesDir: "",
	}
}

// Keys returns the sorted list of known configuration keys.
func Keys() []string {
	d := defaults()
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognised configuration key.
func IsKnownKey(key string) bool {
	_, ok := defaults()[key]
	return ok
}

// Dir returns the path to the config directory (~/.mikrus/). MIKRUS_HOME
// overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.mikrus/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// An empty path means the default FilePath.
func Load(path string) error {
	if path == "" {
		path = FilePath()
	}

	for k, v := range defaults() {
		viper.SetDefault(k, v)
	}

	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file just means nothing was configured yet.
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair to the config file. Only values already
// in the file and key itself are written; defaults and MIKRUS_* environment
// overrides stay out of the file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = FilePath()
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(configFile), err)
	}

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

// OutputDir returns the default directory generated files are written to.
func OutputDir() string { return Get(KeyOutput) }

// TemplateKey returns the default template key.
func TemplateKey() string { return Get(KeyTemplate) }

// APIURL returns the health-check endpoint probed by `mikrus ping`.
func APIURL() string { return Get(KeyAPIURL) }

// LogLevel returns the configured log level name.
func LogLevel() string { return Get(KeyLogLevel) }

// LogFormat returns the configured log format: text, json, or auto.
func LogFormat() string { return Get(KeyLogFormat) }

// TemplatesDir returns the user template directory, or "" when unset.
func TemplatesDir() string { return Get(KeyTemplatesDir) }
