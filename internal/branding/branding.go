// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed, so a fork only has
// to edit that file to rename the tool, its home directory, and its
// environment variable prefix.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ContentRoot string `yaml:"content_root"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "coursekit",
			DisplayName: "CourseKit",
			Description: "Content scaffolding for the DevOps e-learning platform",
			HomeDir:     ".coursekit",
			EnvPrefix:   "COURSEKIT",
			ContentRoot: "content/courses",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "coursekit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "CourseKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".coursekit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "COURSEKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ContentRoot returns the slash-separated course root relative to a base
// path (e.g., "content/courses").
func ContentRoot() string { load(); return defaults.ContentRoot }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("path") → "COURSEKIT_PATH".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
