// Package boosttier serves boost tier reference data from an in-memory
// snapshot. Tiers change rarely; callers always see a consistent view and a
// background refresh picks up edits without restarting the service.
package boosttier

import (
	"context"
	"sync"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/fern/internal/repositories/boosttier"
	"github.com/Ramsey-B/fern/pkg/boost"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

type Service struct {
	logger ectologger.Logger
	repo   boosttier.BoostTierRepository

	mu    sync.RWMutex
	tiers map[string]boost.Tier
}

func NewService(repo boosttier.BoostTierRepository, logger ectologger.Logger) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
		tiers:  make(map[string]boost.Tier),
	}
}

// Refresh replaces the snapshot with the current table contents.
func (s *Service) Refresh(ctx context.Context) error {
	ctx, span := tracing.StartSpan(ctx, "boosttier.Refresh")
	defer span.End()

	tiers, err := s.repo.ListTiers(ctx)
	if err != nil {
		return err
	}

	snapshot := make(map[string]boost.Tier, len(tiers))
	for _, tier := range tiers {
		snapshot[tier.ID] = tier
	}

	s.mu.Lock()
	s.tiers = snapshot
	s.mu.Unlock()

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"count": len(snapshot),
	}).Info("refreshed boost tier snapshot")

	return nil
}

// StartRefresh reloads the snapshot on the given interval until ctx is
// cancelled. A failed reload keeps the previous snapshot in place.
func (s *Service) StartRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.logger.WithContext(ctx).WithError(err).Warn("boost tier refresh failed, keeping previous snapshot")
				}
			}
		}
	}()
}

// GetTier returns the tier for the given id, or nil when the id is empty or
// unknown. A nil tier means default splits with no boost.
func (s *Service) GetTier(id string) *boost.Tier {
	if id == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tier, ok := s.tiers[id]
	if !ok {
		return nil
	}
	return &tier
}

// ListTiers returns the snapshot's tiers.
func (s *Service) ListTiers() []boost.Tier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tiers := make([]boost.Tier, 0, len(s.tiers))
	for _, tier := range s.tiers {
		tiers = append(tiers, tier)
	}
	return tiers
}

// Upsert writes through to the repository and refreshes the snapshot so the
// change is visible immediately rather than on the next tick.
func (s *Service) Upsert(ctx context.Context, tier boost.Tier) error {
	ctx, span := tracing.StartSpan(ctx, "boosttier.Upsert")
	defer span.End()

	if err := s.repo.Upsert(ctx, tier); err != nil {
		return err
	}

	return s.Refresh(ctx)
}
