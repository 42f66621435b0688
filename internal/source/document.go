// SPDX-License-Identifier: Apache-2.0

// Package source turns external inputs — environment variables and
// multi-level dictionary files — into normalized configuration entries for
// the merge layer.
package source

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Op selects the semantics a top-level document key applies to the entries
// nested beneath it.
type Op int

const (
	// OpIgnore marks an unrecognized top-level key; entries are skipped
	// with a diagnostic.
	OpIgnore Op = iota
	// OpSet overwrites each target key unconditionally.
	OpSet
	// OpAppend merges each target key's composite value with the current one.
	OpAppend
)

const (
	setSuffix    = "_set"
	appendSuffix = "_append"
)

// OperationFor classifies a top-level document key by its suffix.
func OperationFor(topKey string) Op {
	switch {
	case strings.HasSuffix(topKey, appendSuffix):
		return OpAppend
	case strings.HasSuffix(topKey, setSuffix):
		return OpSet
	default:
		return OpIgnore
	}
}

// Document is a multi-level mapping from top-level operation key to a mapping
// of target configuration key to value.
//
// Top-level keys are always processed in ascending lexicographic order,
// independent of their order in the source file. When both x_append and
// x_set sections touch the same target key, x_append therefore runs first.
type Document map[string]map[string]any

// TopKeys returns the document's top-level keys in processing order.
func (d Document) TopKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads and parses a multi-level dictionary file. Files ending in .tpl
// are template-rendered to a temporary directory first. Any preprocessing or
// parse failure is reported as a *ParseError naming path.
func Load(path string) (Document, error) {
	parsePath := path
	if strings.HasSuffix(path, TemplateExt) {
		tmpDir, err := os.MkdirTemp("", "externalconfig-")
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		defer os.RemoveAll(tmpDir)

		if parsePath, err = Render(path, tmpDir); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	raw, err := os.ReadFile(parsePath)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var top map[string]any
	if err = yaml.Unmarshal(raw, &top); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	doc := make(Document, len(top))
	for topKey, topValue := range top {
		section, ok := normalizeValue(topValue).(map[string]any)
		if !ok {
			return nil, &ParseError{
				Path: path,
				Err:  fmt.Errorf("top-level key %q does not contain a mapping", topKey),
			}
		}
		doc[topKey] = section
	}

	return doc, nil
}

// normalizeValue rewrites YAML-decoded values so every mapping is a
// map[string]any and every sequence a []any, regardless of key types in the
// source document. The result is safe to hand to encoding/json.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(val))
		for k, item := range val {
			normalized[k] = normalizeValue(item)
		}
		return normalized
	case map[any]any:
		normalized := make(map[string]any, len(val))
		for k, item := range val {
			normalized[fmt.Sprint(k)] = normalizeValue(item)
		}
		return normalized
	case []any:
		normalized := make([]any, len(val))
		for i, item := range val {
			normalized[i] = normalizeValue(item)
		}
		return normalized
	default:
		return v
	}
}
