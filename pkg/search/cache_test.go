package search

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/offer"
)

type fakeKV struct {
	data map[string]string
	sets int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", errors.New("miss")
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.data[key] = value.(string)
	f.sets++
	return nil
}

type countingSearcher struct {
	response Response
	calls    int
}

func (s *countingSearcher) Search(_ context.Context, _ Query) (Response, error) {
	s.calls++
	return s.response, nil
}

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestCachedSearcher_MissThenHit(t *testing.T) {
	backend := &countingSearcher{
		response: Response{
			Hits:    []offer.UnifiedRecord{{ObjectID: "merchant-1", Type: "merchant"}},
			QueryID: "q-1",
			NbHits:  1,
		},
	}
	kv := newFakeKV()
	cached := NewCachedSearcher(backend, kv, time.Minute, testLogger())

	first, err := cached.Search(context.Background(), Query{Term: "shoes"})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, 1, kv.sets)

	second, err := cached.Search(context.Background(), Query{Term: "shoes"})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.calls, "second lookup must be served from cache")
	assert.Equal(t, first, second)
}

func TestCachedSearcher_NormalizedKeysShareEntries(t *testing.T) {
	backend := &countingSearcher{response: Response{QueryID: "q-1"}}
	cached := NewCachedSearcher(backend, newFakeKV(), time.Minute, testLogger())

	_, err := cached.Search(context.Background(), Query{Term: "Trail  Shoes"})
	require.NoError(t, err)
	_, err = cached.Search(context.Background(), Query{Term: "trail shoes"})
	require.NoError(t, err)

	assert.Equal(t, 1, backend.calls, "case and whitespace variants share one cache entry")
}

func TestCachedSearcher_DistinctFiltersDistinctEntries(t *testing.T) {
	backend := &countingSearcher{response: Response{QueryID: "q-1"}}
	cached := NewCachedSearcher(backend, newFakeKV(), time.Minute, testLogger())

	_, err := cached.Search(context.Background(), Query{Term: "shoes", Filters: "type:merchant"})
	require.NoError(t, err)
	_, err = cached.Search(context.Background(), Query{Term: "shoes", Filters: "type:product"})
	require.NoError(t, err)

	assert.Equal(t, 2, backend.calls)
}

func TestCachedSearcher_CorruptEntryTreatedAsMiss(t *testing.T) {
	backend := &countingSearcher{response: Response{QueryID: "q-1"}}
	kv := newFakeKV()
	cached := NewCachedSearcher(backend, kv, time.Minute, testLogger())

	query := Query{Term: "shoes"}
	kv.data[query.CacheKey()] = "{not json"

	response, err := cached.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, "q-1", response.QueryID)
	assert.Equal(t, 1, backend.calls)

	// The bad entry is overwritten with a good one.
	var stored Response
	require.NoError(t, json.Unmarshal([]byte(kv.data[query.CacheKey()]), &stored))
	assert.Equal(t, "q-1", stored.QueryID)
}

func TestQuery_CacheKey(t *testing.T) {
	assert.Equal(t, Query{Term: "Shoes "}.CacheKey(), Query{Term: "shoes"}.CacheKey())
	assert.NotEqual(t, Query{Term: "shoes", Page: 0}.CacheKey(), Query{Term: "shoes", Page: 1}.CacheKey())
	assert.NotEqual(t, Query{Term: "shoes"}.CacheKey(), Query{Term: "shoes", Filters: "type:merchant"}.CacheKey())
}
