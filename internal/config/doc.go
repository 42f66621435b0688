// Package config provides configuration loading, merging, and validation
// for the externalconfig tool itself.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (OMERODIR, EXTCONFIG_LOG_LEVEL)
//  2. Flag-derived overrides
//
// The main entry point is [GetRuntimeConfig].
package config
