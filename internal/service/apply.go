// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ApplyOptions describes one batch run: an optional reset, document files in
// argument order (optionally glob-expanded, each glob sorted), and an
// optional final environment sync.
type ApplyOptions struct {
	Reset   bool
	Glob    bool
	FromEnv bool
	Files   []string
	// Environ overrides the process environment for FromEnv; nil means
	// os.Environ().
	Environ []string
}

// Apply runs a full batch. The first failing step aborts the batch; entries
// already applied stay in place.
func (s *Service) Apply(ctx context.Context, opts ApplyOptions) error {
	if opts.Reset {
		if err := s.Reset(ctx); err != nil {
			return err
		}
	}

	for _, arg := range opts.Files {
		files := []string{arg}
		if opts.Glob {
			matches, err := filepath.Glob(arg)
			if err != nil {
				return fmt.Errorf("invalid glob pattern %q: %w", arg, err)
			}
			sort.Strings(matches)
			files = matches
		}

		for _, file := range files {
			if err := s.UpdateFromDictFile(ctx, file); err != nil {
				return err
			}
		}
	}

	if opts.FromEnv {
		environ := opts.Environ
		if environ == nil {
			environ = os.Environ()
		}
		return s.UpdateFromEnvironment(ctx, environ)
	}

	return nil
}
