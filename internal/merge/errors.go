// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the merge package. The typed errors below unwrap to
// these so callers can classify failures with errors.Is without losing the
// offending key and shapes.
var (
	// ErrTypeMismatch indicates a merge was requested between incompatible
	// shapes (e.g. list vs mapping, or either side not a composite).
	ErrTypeMismatch = errors.New("merge type mismatch")
	// ErrInvalidStoredValue indicates the stored content for a key is not
	// valid JSON, or decodes to a scalar where a composite was expected.
	ErrInvalidStoredValue = errors.New("invalid stored value")
	// ErrDefaultResolution indicates the defaults lookup failed or returned
	// a non-composite value.
	ErrDefaultResolution = errors.New("cannot resolve default value")
)

// TypeMismatchError names the key and both conflicting shapes of a rejected
// merge.
type TypeMismatchError struct {
	Key          string
	CurrentShape Shape
	NewShape     Shape
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("merge type mismatch for key %q: current is %s, new value is %s",
		e.Key, e.CurrentShape, e.NewShape)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// InvalidStoredValueError reports store corruption: the persisted value for
// Key could not be decoded as a composite.
type InvalidStoredValueError struct {
	Key string
	Raw string
	Err error
}

func (e *InvalidStoredValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stored value for key %q is not valid JSON: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("stored value for key %q is not a list or mapping: %s", e.Key, e.Raw)
}

func (e *InvalidStoredValueError) Unwrap() error { return ErrInvalidStoredValue }

// DefaultResolutionError reports a failed defaults lookup for Key.
type DefaultResolutionError struct {
	Key string
	Err error
}

func (e *DefaultResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve default value for key %q: %v", e.Key, e.Err)
}

func (e *DefaultResolutionError) Unwrap() error { return ErrDefaultResolution }
