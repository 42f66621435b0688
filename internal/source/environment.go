// SPDX-License-Identifier: Apache-2.0

package source

import (
	"regexp"
	"strings"
)

// EnvPrefix marks environment variables carrying configuration values.
const EnvPrefix = "CONFIG_"

// A single underscore between two non-underscore characters is a dot
// boundary. Replacement is left-to-right and non-overlapping, so the matched
// boundary characters are consumed exactly once.
var dotBoundary = regexp.MustCompile(`([^_])_([^_])`)

// KeyFromEnvName converts a CONFIG_-stripped environment variable name into
// a configuration key: single underscores become dots, doubled underscores
// collapse to a literal underscore.
//
// Examples:
//
//	omero_data_dir              -> omero.data.dir
//	omero_web_public_url__filter -> omero.web.public.url_filter
func KeyFromEnvName(name string) string {
	key := dotBoundary.ReplaceAllString(name, "$1.$2")
	return strings.ReplaceAll(key, "__", "_")
}

// FromEnvironment extracts configuration entries from environ (formatted as
// "KEY=value", as returned by os.Environ). Only variables with the CONFIG_
// prefix contribute; their names are transformed with KeyFromEnvName and
// their values taken verbatim.
func FromEnvironment(environ []string) map[string]string {
	cfg := make(map[string]string)
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		cfg[KeyFromEnvName(strings.TrimPrefix(name, EnvPrefix))] = value
	}
	return cfg
}
