package footballdata

import (
	"context"
	"fmt"
	"time"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"
	"PitchCast/pkg/cache"
	applogger "PitchCast/pkg/logger"
)

// TTLs controls per-resource cache lifetimes.
type TTLs struct {
	Standings time.Duration
	H2H       time.Duration
	Fixtures  time.Duration
}

// CachedProvider layers a cache over the primary provider and falls back to
// the static dataset when the primary fails, so callers always get data.
type CachedProvider struct {
	primary  drepo.DataProvider
	fallback drepo.DataProvider
	cache    cache.Service
	ttls     TTLs
	metrics  drepo.Metrics
	logger   *applogger.Logger
}

// NewCachedProvider wires primary, fallback, cache and metrics into one
// DataProvider.
func NewCachedProvider(
	primary, fallback drepo.DataProvider,
	cacheSvc cache.Service,
	ttls TTLs,
	metrics drepo.Metrics,
	logger *applogger.Logger,
) drepo.DataProvider {
	return &CachedProvider{
		primary:  primary,
		fallback: fallback,
		cache:    cacheSvc,
		ttls:     ttls,
		metrics:  metrics,
		logger:   logger,
	}
}

func (p *CachedProvider) Team(ctx context.Context, league string, teamID int64) (models.Team, error) {
	key := fmt.Sprintf("team:%s:%d", league, teamID)

	var cached models.Team
	if p.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	t, err := p.primary.Team(ctx, league, teamID)
	if err != nil {
		p.noteFallback("team", err)
		return p.fallback.Team(ctx, league, teamID)
	}

	p.cacheSet(ctx, key, t, p.ttls.Standings)
	return t, nil
}

func (p *CachedProvider) H2H(ctx context.Context, teamAID, teamBID int64) ([]models.H2HMatch, error) {
	// Same cache entry regardless of argument order.
	lo, hi := teamAID, teamBID
	if lo > hi {
		lo, hi = hi, lo
	}
	key := fmt.Sprintf("h2h:%d:%d", lo, hi)

	var cached []models.H2HMatch
	if p.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	matches, err := p.primary.H2H(ctx, teamAID, teamBID)
	if err != nil {
		p.noteFallback("h2h", err)
		return p.fallback.H2H(ctx, teamAID, teamBID)
	}

	p.cacheSet(ctx, key, matches, p.ttls.H2H)
	return matches, nil
}

func (p *CachedProvider) Fixtures(ctx context.Context, league, date string) ([]models.Fixture, error) {
	key := fmt.Sprintf("fixtures:%s:%s", league, date)

	var cached []models.Fixture
	if p.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	fixtures, err := p.primary.Fixtures(ctx, league, date)
	if err != nil {
		p.noteFallback("fixtures", err)
		return p.fallback.Fixtures(ctx, league, date)
	}

	p.cacheSet(ctx, key, fixtures, p.ttls.Fixtures)
	return fixtures, nil
}

func (p *CachedProvider) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if p.cache == nil {
		return false
	}
	return p.cache.Get(ctx, key, dest) == nil
}

func (p *CachedProvider) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if p.cache == nil || ttl <= 0 {
		return
	}
	if err := p.cache.Set(ctx, key, value, ttl); err != nil && p.logger != nil {
		p.logger.Warn("provider cache set failed",
			applogger.String("key", key), applogger.Error(err))
	}
}

func (p *CachedProvider) noteFallback(kind string, err error) {
	if p.metrics != nil {
		p.metrics.RecordFallback(kind)
	}
	if p.logger != nil {
		p.logger.Warn("provider unavailable, using static data",
			applogger.String("resource", kind), applogger.Error(err))
	}
}
