// Package search calls the hosted search index and caches its responses.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ramsey-B/fern/pkg/offer"
)

// Query is a storefront search request.
type Query struct {
	Term        string `json:"query"`
	Filters     string `json:"filters,omitempty"`
	Page        int    `json:"page"`
	HitsPerPage int    `json:"hitsPerPage,omitempty"`
}

// CacheKey returns the normalized cache key for the query. Term whitespace
// and case do not produce distinct cache entries; filters are kept verbatim
// since their syntax is case-sensitive.
func (q Query) CacheKey() string {
	term := strings.ToLower(strings.Join(strings.Fields(q.Term), " "))
	return fmt.Sprintf("search:%s|%s|%d|%d", term, q.Filters, q.Page, q.HitsPerPage)
}

// Response is the search backend's answer: raw unified records plus the
// backend's query id for analytics attribution.
type Response struct {
	Hits    []offer.UnifiedRecord `json:"hits"`
	QueryID string                `json:"queryID,omitempty"`
	Page    int                   `json:"page"`
	NbHits  int                   `json:"nbHits"`
}

// Searcher executes search queries. Implementations are the HTTP client and
// the cache decorator wrapping it.
type Searcher interface {
	Search(ctx context.Context, query Query) (Response, error)
}
