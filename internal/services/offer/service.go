// Package offer orchestrates the storefront offer list: query the search
// backend, transform each hit into a display offer, and compute per-user
// reward breakdowns.
package offer

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/internal/services/boosttier"
	"github.com/Ramsey-B/fern/pkg/appcontext"
	"github.com/Ramsey-B/fern/pkg/boost"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/offer"
	"github.com/Ramsey-B/fern/pkg/reward"
	"github.com/Ramsey-B/fern/pkg/search"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Page is one page of transformed offers.
type Page struct {
	Offers  []offer.Offer `json:"offers"`
	Page    int           `json:"page"`
	NbHits  int           `json:"nb_hits"`
	QueryID string        `json:"query_id,omitempty"`
}

// BreakdownRequest asks for the boost split of one rate. Amount is the
// advertised (pre-fee) figure; the net side is derived here so clients never
// send both halves out of sync.
type BreakdownRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Kind   string  `json:"kind"`
	TierID string  `json:"tier_id"`
}

type Service struct {
	logger   ectologger.Logger
	searcher search.Searcher
	tiers    *boosttier.Service
}

func NewService(searcher search.Searcher, tiers *boosttier.Service, logger ectologger.Logger) *Service {
	return &Service{
		logger:   logger,
		searcher: searcher,
		tiers:    tiers,
	}
}

// List queries the search backend and transforms every hit. The device id for
// affiliate links comes from the request context; a malformed hit degrades to
// a placeholder offer rather than dropping the page.
func (s *Service) List(ctx context.Context, query search.Query) (Page, error) {
	ctx, span := tracing.StartSpan(ctx, "offer.List")
	defer span.End()

	response, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"term": query.Term,
			"page": query.Page,
		}).Error("error querying search backend")
		return Page{}, err
	}

	deviceID := appcontext.GetDeviceID(ctx)

	offers := make([]offer.Offer, 0, len(response.Hits))
	for _, hit := range response.Hits {
		transformed := offer.Transform(hit, deviceID)
		metrics.OffersTransformed.WithLabelValues(transformed.Type).Inc()
		offers = append(offers, transformed)
	}

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"term":    query.Term,
		"page":    response.Page,
		"nb_hits": response.NbHits,
		"offers":  len(offers),
	}).Info("transformed search hits into offers")

	return Page{
		Offers:  offers,
		Page:    response.Page,
		NbHits:  response.NbHits,
		QueryID: response.QueryID,
	}, nil
}

// Breakdown computes the payout/platform split for an advertised rate under
// the caller's boost tier. An unknown tier id falls back to the default split
// rather than failing; tier assignment and rate display must not couple.
func (s *Service) Breakdown(ctx context.Context, req BreakdownRequest) (boost.Breakdown, error) {
	ctx, span := tracing.StartSpan(ctx, "offer.Breakdown")
	defer span.End()

	if req.Amount <= 0 {
		return boost.Breakdown{}, httperror.NewHTTPError(http.StatusBadRequest, "amount must be positive")
	}

	net := reward.NetAmount(req.Amount)
	tier := s.tiers.GetTier(req.TierID)

	breakdown := boost.Compute(net, req.Amount, req.Kind, tier)

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"amount":  req.Amount,
		"net":     net,
		"kind":    string(breakdown.Kind),
		"tier_id": req.TierID,
		"boosted": breakdown.Boosted,
	}).Info("computed reward breakdown")

	return breakdown, nil
}
