package offer

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/internal/services/boosttier"
	"github.com/Ramsey-B/fern/pkg/appcontext"
	"github.com/Ramsey-B/fern/pkg/offer"
	"github.com/Ramsey-B/fern/pkg/search"
)

type stubSearcher struct {
	response search.Response
	err      error
	queries  []search.Query
}

func (s *stubSearcher) Search(_ context.Context, query search.Query) (search.Response, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return search.Response{}, s.err
	}
	return s.response, nil
}

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func testService(searcher search.Searcher) *Service {
	tiers := boosttier.NewService(nil, testLogger())
	return NewService(searcher, tiers, testLogger())
}

func TestService_List(t *testing.T) {
	searcher := &stubSearcher{response: search.Response{
		Hits: []offer.UnifiedRecord{
			{
				ObjectID:       "m1",
				Type:           offer.RecordTypeMerchant,
				MerchantName:   "Acme",
				ActiveDomainID: 456,
				MaxRateAmount:  offer.FlexFloat{Value: 2.5, Valid: true},
				MaxRateType:    "percentage",
				SourceURL:      "https://acme.example.com",
			},
			{
				ObjectID: "weird",
				Type:     "mystery",
			},
		},
		Page:    0,
		NbHits:  2,
		QueryID: "q123",
	}}
	svc := testService(searcher)

	ctx := appcontext.SetDeviceID(context.Background(), "device123")
	page, err := svc.List(ctx, search.Query{Term: "acme"})
	require.NoError(t, err)

	require.Len(t, page.Offers, 2)
	assert.Equal(t, "q123", page.QueryID)

	merchant := page.Offers[0]
	assert.Equal(t, "Acme", merchant.Title)
	assert.Equal(t, "456", merchant.TrackingID)
	assert.Contains(t, merchant.Href, "/r/w?")
	assert.Contains(t, merchant.Href, "d=device123")

	unknown := page.Offers[1]
	assert.Equal(t, "No reward info", unknown.RewardLabel, "a malformed hit degrades instead of failing the page")
}

func TestService_ListWithoutDeviceID(t *testing.T) {
	searcher := &stubSearcher{response: search.Response{
		Hits: []offer.UnifiedRecord{{
			ObjectID:       "m1",
			Type:           offer.RecordTypeMerchant,
			MerchantName:   "Acme",
			ActiveDomainID: 456,
		}},
		NbHits: 1,
	}}
	svc := testService(searcher)

	page, err := svc.List(context.Background(), search.Query{Term: "acme"})
	require.NoError(t, err)
	assert.Empty(t, page.Offers[0].Href, "no device id means no affiliate link")
	assert.Equal(t, "456", page.Offers[0].TrackingID, "tracking id is still surfaced")
}

func TestService_ListSearchError(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("backend down")}
	svc := testService(searcher)

	_, err := svc.List(context.Background(), search.Query{Term: "acme"})
	require.Error(t, err)
}

func TestService_Breakdown(t *testing.T) {
	svc := testService(&stubSearcher{})

	breakdown, err := svc.Breakdown(context.Background(), BreakdownRequest{Amount: 5.0, Kind: "PERCENTAGE"})
	require.NoError(t, err)

	// 5.00 advertised -> 4.50 net -> 45% split on each side.
	assert.Equal(t, "2.02", breakdown.Payout.Base.StringFixed(2))
	assert.Equal(t, "2.02", breakdown.Platform.Base.StringFixed(2))
	assert.False(t, breakdown.Boosted)
}

func TestService_BreakdownUnknownTierFallsBack(t *testing.T) {
	svc := testService(&stubSearcher{})

	breakdown, err := svc.Breakdown(context.Background(), BreakdownRequest{Amount: 5.0, TierID: "no-such-tier"})
	require.NoError(t, err)
	assert.False(t, breakdown.Boosted, "unknown tier id uses the default split")
}

func TestService_BreakdownRejectsNonPositiveAmount(t *testing.T) {
	svc := testService(&stubSearcher{})

	_, err := svc.Breakdown(context.Background(), BreakdownRequest{Amount: 0})
	require.Error(t, err)
}
