// SPDX-License-Identifier: Apache-2.0

// Package merge implements the value merger at the heart of externalconfig:
// given the currently stored raw value for a key (if any), an optional
// domain defaults lookup and a new value, it computes the value to persist.
//
// Merge is a pure function. It never touches the store; the caller decides
// how to persist the result.
package merge

import "fmt"

// DefaultsProvider supplies baseline composite values for keys inside a
// recognized namespace. It is injected so this package carries no
// compile-time dependency on the application that defines the defaults.
type DefaultsProvider interface {
	// Eligible reports whether key belongs to the namespace the provider
	// can answer for.
	Eligible(key string) bool
	// Lookup returns the default composite value for key. ok is false when
	// the provider has no entry for key; err is non-nil when the default
	// computation itself failed.
	Lookup(key string) (value any, ok bool, err error)
}

// Merge computes the merged value for key.
//
// The current value is the JSON-decoded stored value when currentRaw is
// non-nil, otherwise the provider default for a default-eligible key,
// otherwise undefined. With an undefined current value the result is simply
// newValue (first write wins). Two lists concatenate (current items first, no
// deduplication); two mappings overlay shallowly (new keys win, keys absent
// from newValue are preserved). Every other combination fails with a
// *TypeMismatchError.
//
// defaults may be nil, in which case no key is default-eligible.
func Merge(currentRaw *string, defaults DefaultsProvider, key string, newValue any) (any, error) {
	current, err := currentValue(currentRaw, defaults, key)
	if err != nil {
		return nil, err
	}
	if current == nil {
		// Key has no value yet, return the input instead of trying to
		// figure out the type.
		return newValue, nil
	}

	switch cur := current.(type) {
	case []any:
		if next, ok := newValue.([]any); ok {
			merged := make([]any, 0, len(cur)+len(next))
			merged = append(merged, cur...)
			merged = append(merged, next...)
			return merged, nil
		}
	case map[string]any:
		if next, ok := newValue.(map[string]any); ok {
			merged := make(map[string]any, len(cur)+len(next))
			for k, v := range cur {
				merged[k] = v
			}
			for k, v := range next {
				merged[k] = v
			}
			return merged, nil
		}
	}

	return nil, &TypeMismatchError{
		Key:          key,
		CurrentShape: ShapeOf(current),
		NewShape:     ShapeOf(newValue),
	}
}

// currentValue resolves the composite value the merge starts from, or nil
// when the key is effectively unset.
func currentValue(currentRaw *string, defaults DefaultsProvider, key string) (any, error) {
	if currentRaw != nil {
		return decodeStored(key, *currentRaw)
	}
	if defaults == nil || !defaults.Eligible(key) {
		return nil, nil
	}

	value, ok, err := defaults.Lookup(key)
	if err != nil {
		return nil, &DefaultResolutionError{Key: key, Err: err}
	}
	if !ok {
		return nil, nil
	}
	if !IsComposite(value) {
		return nil, &DefaultResolutionError{
			Key: key,
			Err: fmt.Errorf("default is not a list or mapping: %v", value),
		}
	}
	return value, nil
}
