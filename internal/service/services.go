// SPDX-License-Identifier: Apache-2.0

// Package service implements the top-level externalconfig operations:
// updating the persisted configuration from dictionaries, environment
// variables and multi-level dictionary files, and resetting it.
//
// Every operation acquires the config store for its own duration and
// releases it on all exit paths. A batch that fails part-way leaves the
// already-applied entries in place; there is no rollback.
package service

import (
	"context"

	"github.com/omebuild/externalconfig/internal/logger"
	"github.com/omebuild/externalconfig/internal/merge"
	"github.com/omebuild/externalconfig/internal/store"
)

// StoreOpener acquires the config store for a single operation.
type StoreOpener func(ctx context.Context) (store.ConfigStore, error)

// Service applies external configuration sources to the config store.
type Service struct {
	openStore StoreOpener
	defaults  merge.DefaultsProvider
	logger    *logger.Logger
}

// NewService wires a Service. defaults may be nil when no key namespace has
// known defaults.
func NewService(openStore StoreOpener, defaults merge.DefaultsProvider, log *logger.Logger) *Service {
	return &Service{
		openStore: openStore,
		defaults:  defaults,
		logger:    log,
	}
}

// withStore runs fn against a freshly opened store and guarantees the store
// is closed afterwards, even when fn fails mid-batch.
func (s *Service) withStore(ctx context.Context, fn func(ctx context.Context, st store.ConfigStore) error) (err error) {
	st, err := s.openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			s.logger.Err(cerr).Msg("failed to close config store")
			if err == nil {
				err = cerr
			}
		}
	}()

	return fn(s.logger.WithContext(ctx), st)
}
