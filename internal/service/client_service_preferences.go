// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pilot-logbook/internal/adapter"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

type preferencesProvider struct {
	adapter   adapter.ServerAdapter
	cache     store.PreferencesCache
	validator validators.Validator
	logger    *logger.Logger

	mu          sync.Mutex
	prefs       models.UserPreferences
	loading     bool
	synced      bool
	state       MutationState
	subscribers []chan models.UserPreferences
}

// NewPreferencesProvider returns a provider holding the defaults. It reports
// Loading until Init or Refresh resolves.
func NewPreferencesProvider(serverAdapter adapter.ServerAdapter, cache store.PreferencesCache, validator validators.Validator, logger *logger.Logger) PreferencesProvider {
	return &preferencesProvider{
		adapter:   serverAdapter,
		cache:     cache,
		validator: validator,
		logger:    logger,
		prefs:     models.DefaultPreferences(),
		loading:   true,
	}
}

func (p *preferencesProvider) Init(ctx context.Context, initial *models.UserPreferences) error {
	log := p.logger.With().Str("func", "*preferencesProvider.Init").Logger()

	if initial != nil {
		err := p.validator.Validate(ctx, *initial)
		if err == nil {
			p.set(*initial, true)
			p.writeCache(ctx, *initial)
			return nil
		}
		log.Warn().Err(err).Msg("initial preferences are invalid, ignoring them")
	}

	if cached, ok := p.readCache(ctx); ok {
		p.set(cached, false)
		return nil
	}

	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	return p.Refresh(ctx)
}

// readCache returns the snapshot when it is present and valid. Corrupted or
// invalid snapshots are removed.
func (p *preferencesProvider) readCache(ctx context.Context) (models.UserPreferences, bool) {
	log := p.logger.With().Str("func", "*preferencesProvider.readCache").Logger()

	cached, err := p.cache.Get(ctx)
	switch {
	case err == nil:
		if err = p.validator.Validate(ctx, cached); err == nil {
			return cached, true
		}
		log.Warn().Err(err).Msg("cached preferences are invalid")
	case errors.Is(err, store.ErrSnapshotNotFound):
		return models.UserPreferences{}, false
	case errors.Is(err, store.ErrCorruptedSnapshot):
		log.Warn().Err(err).Msg("cached preferences are corrupted")
	default:
		log.Err(err).Msg("failed to read cached preferences")
		return models.UserPreferences{}, false
	}

	if err = p.cache.Invalidate(ctx); err != nil {
		log.Err(err).Msg("failed to invalidate cached preferences")
	}
	return models.UserPreferences{}, false
}

// Refresh keeps the current value and loading flag when the server cannot be
// reached.
func (p *preferencesProvider) Refresh(ctx context.Context) error {
	prefs, err := p.adapter.GetPreferences(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "*preferencesProvider.Refresh").Msg("failed to load preferences from server")
		return fmt.Errorf("error loading preferences: %w", mapAdapterError(err))
	}

	p.set(prefs, true)
	p.writeCache(ctx, prefs)
	return nil
}

func (p *preferencesProvider) Update(ctx context.Context, patch models.PreferencesPatch) (models.UserPreferences, error) {
	return p.mutate(ctx, func(current models.UserPreferences) models.UserPreferences {
		return current.Merge(patch)
	}, func(ctx context.Context) (models.UserPreferences, error) {
		return p.adapter.UpdatePreferences(ctx, patch)
	})
}

func (p *preferencesProvider) Reset(ctx context.Context) (models.UserPreferences, error) {
	return p.mutate(ctx, func(models.UserPreferences) models.UserPreferences {
		return models.DefaultPreferences()
	}, p.adapter.ResetPreferences)
}

// mutate applies speculate to the current value in memory and in the cache,
// then commits remotely. The server result is adopted on success; on failure
// the value held before the call is restored. Concurrent mutations are not
// ordered: the last one to finish wins.
func (p *preferencesProvider) mutate(
	ctx context.Context,
	speculate func(models.UserPreferences) models.UserPreferences,
	commit func(context.Context) (models.UserPreferences, error),
) (models.UserPreferences, error) {
	log := p.logger.With().Str("func", "*preferencesProvider.mutate").Logger()

	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return models.UserPreferences{}, ErrPreferencesLoading
	}
	snapshot := p.prefs
	speculative := speculate(snapshot)
	p.prefs = speculative
	p.state = MutationApplying
	p.notifyLocked()
	p.mu.Unlock()

	p.writeCache(ctx, speculative)

	result, err := commit(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("server rejected preferences, rolling back")

		p.mu.Lock()
		p.prefs = snapshot
		p.state = MutationRolledBack
		p.notifyLocked()
		p.mu.Unlock()

		p.writeCache(context.WithoutCancel(ctx), snapshot)
		return models.UserPreferences{}, mapAdapterError(err)
	}

	p.mu.Lock()
	p.prefs = result
	p.synced = true
	p.state = MutationCommitted
	p.notifyLocked()
	p.mu.Unlock()

	p.writeCache(ctx, result)
	return result, nil
}

func (p *preferencesProvider) Preferences() models.UserPreferences {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.prefs
}

func (p *preferencesProvider) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *preferencesProvider) Synced() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.synced
}

func (p *preferencesProvider) State() MutationState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *preferencesProvider) Subscribe() <-chan models.UserPreferences {
	ch := make(chan models.UserPreferences, 1)

	p.mu.Lock()
	p.subscribers = append(p.subscribers, ch)
	p.mu.Unlock()

	return ch
}

func (p *preferencesProvider) set(prefs models.UserPreferences, synced bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.prefs = prefs
	p.loading = false
	p.synced = synced
	p.notifyLocked()
}

// notifyLocked replaces any unread value of each subscriber with the current
// one. p.mu must be held.
func (p *preferencesProvider) notifyLocked() {
	for _, ch := range p.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- p.prefs
	}
}

func (p *preferencesProvider) writeCache(ctx context.Context, prefs models.UserPreferences) {
	if err := p.cache.Put(ctx, prefs); err != nil {
		p.logger.Err(err).Str("func", "*preferencesProvider.writeCache").Msg("failed to cache preferences")
	}
}
