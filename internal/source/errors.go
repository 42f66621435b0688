// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"fmt"
)

// ErrSourceParse is the sentinel for document files that could not be turned
// into a nested mapping, including template preprocessing failures.
var ErrSourceParse = errors.New("failed to parse source document")

// ParseError names the document that failed and wraps the underlying cause.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return ErrSourceParse }
