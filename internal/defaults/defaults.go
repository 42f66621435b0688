// SPDX-License-Identifier: Apache-2.0

// Package defaults supplies baseline composite values for configuration keys
// in the omero.web namespace. When such a key has no stored value yet, append
// operations start from the known default instead of an empty value, so that
// e.g. adding a server to omero.web.server_list keeps the stock localhost
// entry.
package defaults

import "strings"

// WebPrefix is the namespace for which web defaults exist.
const WebPrefix = "omero.web."

// Web resolves defaults for omero.web keys from a fixed table.
// It implements merge.DefaultsProvider.
type Web struct{}

// NewWeb returns a Web defaults provider.
func NewWeb() *Web {
	return &Web{}
}

// Eligible reports whether key is in the omero.web namespace.
func (*Web) Eligible(key string) bool {
	return strings.HasPrefix(key, WebPrefix)
}

// Lookup returns a fresh copy of the default composite value for key, or
// ok=false when no default is known. Keys without a default are legitimate;
// the caller falls back to first-write-wins.
func (*Web) Lookup(key string) (any, bool, error) {
	factory, ok := webDefaults[key]
	if !ok {
		return nil, false, nil
	}
	return factory(), true, nil
}

// webDefaults maps keys to factories so every lookup yields a fresh value the
// merger may extend without aliasing a shared table.
var webDefaults = map[string]func() any{
	"omero.web.server_list": func() any {
		return []any{
			[]any{"localhost", 4064, "omero"},
		}
	},
	"omero.web.open_with": func() any {
		return []any{
			[]any{"Image viewer", "webgateway", map[string]any{
				"script_url":        "webclient/javascript/ome.openwith_viewer.js",
				"supported_objects": []any{"image"},
			}},
		}
	},
	"omero.web.ui.top_links": func() any {
		return []any{
			[]any{"Data", "webindex", map[string]any{
				"title": "Browse Data via Projects, Tags etc",
			}},
			[]any{"History", "history", map[string]any{
				"title": "History",
			}},
			[]any{"Help", "https://help.openmicroscopy.org/", map[string]any{
				"title":  "Open OMERO user guide in a new tab",
				"target": "new",
			}},
		}
	},
	"omero.web.apps": func() any {
		return []any{}
	},
}
