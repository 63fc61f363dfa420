package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/devops-elearning/coursekit/internal/branding"
	"github.com/devops-elearning/coursekit/internal/course"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyCategory   = "defaults.category"
	KeyDifficulty = "defaults.difficulty"
	KeyInstructor = "defaults.instructor"
	KeyDuration   = "defaults.duration"
	KeyPath       = "content.path"
)

// Keys lists every key accepted by Set, in display order.
var Keys = []string{KeyCategory, KeyDifficulty, KeyInstructor, KeyDuration, KeyPath}

// Dir returns the config directory. <PREFIX>_HOME overrides ~/.coursekit/.
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

// FilePath returns the full path to the config file.
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

// Load initializes Viper from .env, the environment, and the config file.
func Load() {
	// A missing .env is normal; existing environment variables win.
	_ = godotenv.Load()

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyCategory, course.DefaultCategory)
	viper.SetDefault(KeyDifficulty, course.DefaultDifficulty)
	viper.SetDefault(KeyInstructor, course.DefaultInstructor)
	viper.SetDefault(KeyDuration, course.DefaultDuration)
	viper.SetDefault(KeyPath, ".")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKey reports whether key is a recognized configuration key.
func IsKey(key string) bool {
	return slices.Contains(Keys, key)
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file plus key are written; defaults and environment
// values stay out of it.
func Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
