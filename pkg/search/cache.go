package search

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/redis"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// KV is the cache surface the decorator needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// CachedSearcher caches search responses for a fixed revalidation window,
// keyed by the normalized query. Concurrent requests for the same key may
// both miss and both recompute; the underlying search call is idempotent and
// cheap relative to the window, so no single-flight deduplication is done.
type CachedSearcher struct {
	inner  Searcher
	cache  KV
	ttl    time.Duration
	logger ectologger.Logger
}

// NewCachedSearcher wraps a Searcher with a response cache.
func NewCachedSearcher(inner Searcher, cache KV, ttl time.Duration, logger ectologger.Logger) *CachedSearcher {
	return &CachedSearcher{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *CachedSearcher) Search(ctx context.Context, query Query) (Response, error) {
	ctx, span := tracing.StartSpan(ctx, "search.CachedSearcher.Search")
	defer span.End()

	key := query.CacheKey()

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var response Response
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			metrics.SearchCacheLookups.WithLabelValues("hit").Inc()
			return response, nil
		}
		// Corrupt entries are treated as misses and overwritten below.
		s.logger.WithContext(ctx).WithField("key", key).Warn("discarding unreadable search cache entry")
	} else if !redis.IsMiss(err) {
		// Cache trouble must not take search down with it.
		s.logger.WithContext(ctx).WithError(err).Warn("search cache read failed, querying backend directly")
	}

	metrics.SearchCacheLookups.WithLabelValues("miss").Inc()

	response, err := s.inner.Search(ctx, query)
	if err != nil {
		return Response{}, err
	}

	encoded, err := json.Marshal(response)
	if err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
			s.logger.WithContext(ctx).WithError(err).Warn("failed to write search cache entry")
		}
	}

	return response, nil
}
