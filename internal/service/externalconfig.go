// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/omebuild/externalconfig/internal/logger"
	"github.com/omebuild/externalconfig/internal/merge"
	"github.com/omebuild/externalconfig/internal/source"
	"github.com/omebuild/externalconfig/internal/store"
)

// Reset deletes every persisted configuration key.
func (s *Service) Reset(ctx context.Context) error {
	return s.withStore(ctx, func(ctx context.Context, st store.ConfigStore) error {
		keys, err := st.Keys(ctx)
		if err != nil {
			return err
		}
		if err = st.RemoveAll(ctx); err != nil {
			return err
		}

		logger.FromContext(ctx).Info().Int("removed", len(keys)).Msg("Reset configuration")
		return nil
	})
}

// UpdateFromDict sets each entry of dict unconditionally. String values are
// stored verbatim; all other values are stored as canonical JSON.
func (s *Service) UpdateFromDict(ctx context.Context, dict map[string]any) error {
	return s.withStore(ctx, func(ctx context.Context, st store.ConfigStore) error {
		return s.updateFromDict(ctx, st, dict)
	})
}

// AddFromDict merges each entry of dict — whose values must be lists or
// mappings — into the current value of its key.
func (s *Service) AddFromDict(ctx context.Context, dict map[string]any) error {
	return s.withStore(ctx, func(ctx context.Context, st store.ConfigStore) error {
		return s.addFromDict(ctx, st, dict)
	})
}

// UpdateFromEnvironment sets configuration entries derived from CONFIG_*
// variables in environ (formatted as by os.Environ).
func (s *Service) UpdateFromEnvironment(ctx context.Context, environ []string) error {
	cfg := source.FromEnvironment(environ)

	dict := make(map[string]any, len(cfg))
	for k, v := range cfg {
		dict[k] = v
	}
	return s.UpdateFromDict(ctx, dict)
}

// UpdateFromDictFile applies a multi-level dictionary file. Top-level keys
// are processed in ascending lexicographic order; a _append suffix merges
// the nested entries, a _set suffix overwrites them, and anything else is
// skipped with a diagnostic.
func (s *Service) UpdateFromDictFile(ctx context.Context, path string) error {
	doc, err := source.Load(path)
	if err != nil {
		return err
	}

	return s.withStore(ctx, func(ctx context.Context, st store.ConfigStore) error {
		for _, topKey := range doc.TopKeys() {
			switch source.OperationFor(topKey) {
			case source.OpAppend:
				if err := s.addFromDict(ctx, st, doc[topKey]); err != nil {
					return err
				}
			case source.OpSet:
				if err := s.updateFromDict(ctx, st, doc[topKey]); err != nil {
					return err
				}
			default:
				s.logger.Warn().
					Str("top_key", topKey).
					Str("file", path).
					Msg("Ignoring top-level key")
			}
		}
		return nil
	})
}

func (s *Service) updateFromDict(ctx context.Context, st store.ConfigStore, dict map[string]any) error {
	log := logger.FromContext(ctx)

	for _, key := range sortedKeys(dict) {
		raw, err := scalarValue(dict[key])
		if err != nil {
			return fmt.Errorf("cannot encode value for key %q: %w", key, err)
		}

		log.Info().Str("key", key).Str("value", raw).Msg("Setting")
		if err = st.Set(ctx, key, raw); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) addFromDict(ctx context.Context, st store.ConfigStore, dict map[string]any) error {
	log := logger.FromContext(ctx)

	for _, key := range sortedKeys(dict) {
		value := dict[key]
		if !merge.IsComposite(value) {
			return fmt.Errorf("append for key %q requires a list or mapping, got %s: %w",
				key, merge.ShapeOf(value), merge.ErrTypeMismatch)
		}

		current, ok, err := st.Get(ctx, key)
		if err != nil {
			return err
		}
		var currentRaw *string
		if ok {
			currentRaw = &current
		}

		merged, err := merge.Merge(currentRaw, s.defaults, key, value)
		if err != nil {
			return err
		}

		encoded, err := merge.EncodeCanonical(merged)
		if err != nil {
			return fmt.Errorf("cannot encode merged value for key %q: %w", key, err)
		}

		verb := "Appending"
		if merge.ShapeOf(value) == merge.ShapeMapping {
			verb = "Adding"
		}
		log.Info().Str("key", key).Str("value", encoded).Msg(verb)

		if err = st.Set(ctx, key, encoded); err != nil {
			return err
		}
	}
	return nil
}

// scalarValue renders a value for unconditional set: strings pass through
// verbatim, everything else becomes canonical JSON.
func scalarValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return merge.EncodeCanonical(value)
}

func sortedKeys(dict map[string]any) []string {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
