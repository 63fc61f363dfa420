// Package config manages user-level settings stored at ~/.coursekit/config.yaml.
// Values resolve in order: COURSEKIT_* environment variables (including any
// loaded from a .env file in the working directory), the config file, then
// built-in defaults. Command-line flags override all of these in the cli
// package.
package config
