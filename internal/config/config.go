// SPDX-License-Identifier: Apache-2.0

package config

// RuntimeConfig holds the settings of the externalconfig tool itself, as
// opposed to the configuration values it manages. It is populated by merging
// environment variables with flag-derived values.
type RuntimeConfig struct {
	// BaseDir is the server base directory; the config store lives beneath
	// it. The host environment provides it as OMERODIR.
	// Env: OMERODIR
	BaseDir string `env:"OMERODIR"`

	// LogLevel optionally overrides the verbosity-derived log level
	// ("debug", "info", "warn", ...).
	// Env: EXTCONFIG_LOG_LEVEL
	LogLevel string `env:"EXTCONFIG_LOG_LEVEL"`
}

// GetRuntimeConfig loads, merges, and validates the tool configuration.
// Environment variables take priority; overrides fills in anything the
// environment left unset (flag values, typically). overrides may be nil.
func GetRuntimeConfig(overrides *RuntimeConfig) (*RuntimeConfig, error) {
	return newConfigBuilder().
		withEnv().
		withOverrides(overrides).
		build()
}
