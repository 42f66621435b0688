// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDefaults is a DefaultsProvider backed by a map, with an optional
// injected lookup failure.
type fakeDefaults struct {
	prefix    string
	values    map[string]any
	lookupErr error
}

func (f *fakeDefaults) Eligible(key string) bool {
	return len(key) >= len(f.prefix) && key[:len(f.prefix)] == f.prefix
}

func (f *fakeDefaults) Lookup(key string) (any, bool, error) {
	if f.lookupErr != nil {
		return nil, false, f.lookupErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func strptr(s string) *string { return &s }

func TestMerge_FirstWriteWins(t *testing.T) {
	tests := []struct {
		name     string
		newValue any
	}{
		{name: "list", newValue: []any{"a", "b"}},
		{name: "mapping", newValue: map[string]any{"k": "v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(nil, nil, "some.key", tt.newValue)
			require.NoError(t, err)
			assert.Equal(t, tt.newValue, got)
		})
	}
}

func TestMerge_ListAppend(t *testing.T) {
	got, err := Merge(strptr(`["value1"]`), nil, "initial.key", []any{"value2", "value3"})
	require.NoError(t, err)
	assert.Equal(t, []any{"value1", "value2", "value3"}, got)
}

func TestMerge_ListAppend_NoDeduplication(t *testing.T) {
	got, err := Merge(strptr(`["x"]`), nil, "k", []any{"x"})
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "x"}, got)
}

func TestMerge_MappingOverlay(t *testing.T) {
	got, err := Merge(
		strptr(`{"x":1,"y":3}`),
		nil,
		"k",
		map[string]any{"x": 2, "z": 4},
	)
	require.NoError(t, err)

	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Len(t, m, 3)
	assert.Equal(t, 2, m["x"])
	assert.Equal(t, 4, m["z"])
	// Keys absent from the new value are preserved.
	assert.Contains(t, m, "y")
}

func TestMerge_MappingOverlay_IsShallow(t *testing.T) {
	got, err := Merge(
		strptr(`{"nested":{"a":1,"b":2}}`),
		nil,
		"k",
		map[string]any{"nested": map[string]any{"a": 9}},
	)
	require.NoError(t, err)

	m := got.(map[string]any)
	// Nested structures are replaced wholesale, not merged recursively.
	assert.Equal(t, map[string]any{"a": 9}, m["nested"])
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	next := map[string]any{"b": 2}
	_, err := Merge(strptr(`{"a":1}`), nil, "k", next)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": 2}, next)
}

func TestMerge_TypeMismatch(t *testing.T) {
	tests := []struct {
		name        string
		currentRaw  string
		newValue    any
		wantCurrent Shape
		wantNew     Shape
	}{
		{name: "list vs mapping", currentRaw: `["a"]`, newValue: map[string]any{"k": "v"}, wantCurrent: ShapeList, wantNew: ShapeMapping},
		{name: "mapping vs list", currentRaw: `{"k":"v"}`, newValue: []any{"a"}, wantCurrent: ShapeMapping, wantNew: ShapeList},
		{name: "list vs scalar", currentRaw: `["a"]`, newValue: "b", wantCurrent: ShapeList, wantNew: ShapeScalar},
		{name: "mapping vs scalar", currentRaw: `{"k":"v"}`, newValue: 42, wantCurrent: ShapeMapping, wantNew: ShapeScalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(strptr(tt.currentRaw), nil, "the.key", tt.newValue)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTypeMismatch)

			var mismatch *TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, "the.key", mismatch.Key)
			assert.Equal(t, tt.wantCurrent, mismatch.CurrentShape)
			assert.Equal(t, tt.wantNew, mismatch.NewShape)
		})
	}
}

func TestMerge_InvalidStoredValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not JSON", raw: "ssl,tcp,ws"},
		{name: "scalar JSON", raw: `"just a string"`},
		{name: "numeric JSON", raw: "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(strptr(tt.raw), nil, "bad.key", []any{"x"})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidStoredValue)

			var invalid *InvalidStoredValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "bad.key", invalid.Key)
		})
	}
}

func TestMerge_DefaultEligible(t *testing.T) {
	defaults := &fakeDefaults{
		prefix: "omero.web.",
		values: map[string]any{
			"omero.web.server_list": []any{[]any{"localhost", 4064, "omero"}},
		},
	}

	t.Run("default used as base for append", func(t *testing.T) {
		got, err := Merge(nil, defaults, "omero.web.server_list", []any{[]any{"idr", 4064, "idr"}})
		require.NoError(t, err)
		assert.Equal(t, []any{
			[]any{"localhost", 4064, "omero"},
			[]any{"idr", 4064, "idr"},
		}, got)
	})

	t.Run("eligible key without entry falls back to first write", func(t *testing.T) {
		got, err := Merge(nil, defaults, "omero.web.this.key.doesnt.exist", []any{"abc"})
		require.NoError(t, err)
		assert.Equal(t, []any{"abc"}, got)
	})

	t.Run("stored value shadows the default", func(t *testing.T) {
		got, err := Merge(strptr(`["stored"]`), defaults, "omero.web.server_list", []any{"x"})
		require.NoError(t, err)
		assert.Equal(t, []any{"stored", "x"}, got)
	})

	t.Run("ineligible key skips the provider", func(t *testing.T) {
		got, err := Merge(nil, defaults, "omero.data.dir.list", []any{"x"})
		require.NoError(t, err)
		assert.Equal(t, []any{"x"}, got)
	})
}

func TestMerge_DefaultResolutionError(t *testing.T) {
	t.Run("lookup failure", func(t *testing.T) {
		defaults := &fakeDefaults{prefix: "omero.web.", lookupErr: errors.New("boom")}

		_, err := Merge(nil, defaults, "omero.web.server_list", []any{"x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDefaultResolution)

		var resolution *DefaultResolutionError
		require.ErrorAs(t, err, &resolution)
		assert.Equal(t, "omero.web.server_list", resolution.Key)
	})

	t.Run("non-composite default", func(t *testing.T) {
		defaults := &fakeDefaults{
			prefix: "omero.web.",
			values: map[string]any{"omero.web.debug": "true"},
		}

		_, err := Merge(nil, defaults, "omero.web.debug", []any{"x"})
		assert.ErrorIs(t, err, ErrDefaultResolution)
	})
}

func TestMerge_ListAppendIsAssociativeInSequence(t *testing.T) {
	// Appending [a] then [b] equals appending [a, b] once.
	step1, err := Merge(nil, nil, "k", []any{"a"})
	require.NoError(t, err)
	raw1, err := EncodeCanonical(step1)
	require.NoError(t, err)
	step2, err := Merge(&raw1, nil, "k", []any{"b"})
	require.NoError(t, err)

	once, err := Merge(nil, nil, "k", []any{"a", "b"})
	require.NoError(t, err)

	got2, err := EncodeCanonical(step2)
	require.NoError(t, err)
	gotOnce, err := EncodeCanonical(once)
	require.NoError(t, err)
	assert.Equal(t, gotOnce, got2)
}

func TestEncodeCanonical(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "sorted keys", value: map[string]any{"k": "v", "b": true}, want: `{"b":true,"k":"v"}`},
		{name: "non-ASCII preserved", value: map[string]any{"name": "müller"}, want: `{"name":"müller"}`},
		{name: "no HTML escaping", value: []any{"<script>", "&"}, want: `["<script>","&"]`},
		{name: "nested", value: []any{map[string]any{"k": "v", "b": true}}, want: `[{"b":true,"k":"v"}]`},
		{name: "number", value: 25, want: "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeCanonical(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeCanonical_RoundTripPreservesNumbers(t *testing.T) {
	merged, err := Merge(strptr(`[25,1e20]`), nil, "k", []any{})
	require.NoError(t, err)

	got, err := EncodeCanonical(merged)
	require.NoError(t, err)
	assert.Equal(t, `[25,1e20]`, got)
}

func TestShapeOf(t *testing.T) {
	assert.Equal(t, ShapeList, ShapeOf([]any{}))
	assert.Equal(t, ShapeMapping, ShapeOf(map[string]any{}))
	assert.Equal(t, ShapeScalar, ShapeOf("s"))
	assert.Equal(t, ShapeScalar, ShapeOf(42))
	assert.Equal(t, ShapeScalar, ShapeOf(nil))
}
