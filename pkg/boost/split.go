package boost

import (
	"github.com/shopspring/decimal"

	"github.com/Ramsey-B/fern/pkg/reward"
)

// Split is one side of a reward breakdown: the unboosted baseline and the
// boosted figure shown when any multiplier is above 1.0. Amounts are
// truncated to two places; the split never rounds up past what will be paid.
type Split struct {
	Base    decimal.Decimal `json:"base"`
	Boosted decimal.Decimal `json:"boosted"`
}

// Breakdown is the user-specific reward split for one offer rate. Kind
// carries through so callers can render percentage-of-percentage and
// dollar-of-dollar branches in parallel.
type Breakdown struct {
	Kind     reward.Kind `json:"kind"`
	Payout   Split       `json:"payout_token"`
	Platform Split       `json:"platform_token"`
	Boosted  bool        `json:"boosted"`
}

// Compute derives the displayed payout-token / platform-token split for a
// rate. net is the post-fee amount, advertised the pre-fee source value.
//
// The baseline is the net amount scaled by the tier's split percentages. The
// boosted figure is the advertised amount scaled by split and multiplier:
// boosts intentionally apply to the gross reward, matching the storefront's
// displayed numbers. A nil tier yields the default 45%/45% split, unboosted.
//
// A rate is classified flat only on an exact "FLAT" kind; any other kind
// value takes the percentage branch. Both branches are structurally
// identical; the kind only changes how callers render the result.
func Compute(net, advertised float64, kind string, tier *Tier) Breakdown {
	resolved := reward.KindPercentage
	if reward.IsFlat(kind) {
		resolved = reward.KindFlat
	}

	netDec := decimal.NewFromFloat(net)
	advertisedDec := decimal.NewFromFloat(advertised)
	payoutSplit := decimal.NewFromFloat(tier.payoutSplit())
	platformSplit := decimal.NewFromFloat(tier.platformSplit())

	basePayout := netDec.Mul(payoutSplit)
	basePlatform := netDec.Mul(platformSplit)

	boostedPayout := advertisedDec.Mul(payoutSplit).Mul(decimal.NewFromFloat(tier.payoutMultiplier()))
	boostedPlatform := advertisedDec.Mul(platformSplit).Mul(decimal.NewFromFloat(tier.platformMultiplier()))

	return Breakdown{
		Kind:    resolved,
		Boosted: tier.Boosted(),
		Payout: Split{
			Base:    basePayout.RoundDown(2),
			Boosted: boostedPayout.RoundDown(2),
		},
		Platform: Split{
			Base:    basePlatform.RoundDown(2),
			Boosted: boostedPlatform.RoundDown(2),
		},
	}
}
