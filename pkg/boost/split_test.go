package boost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/fern/pkg/reward"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCompute_DefaultSplitWithoutTier(t *testing.T) {
	// net 4.5 (advertised 5.0, post-fee), no tier: 45%/45% split, unboosted.
	b := Compute(4.5, 5.0, "PERCENTAGE", nil)

	assert.Equal(t, reward.KindPercentage, b.Kind)
	assert.False(t, b.Boosted)
	assert.True(t, b.Payout.Base.Equal(dec("2.02")), "got %s", b.Payout.Base)
	assert.True(t, b.Platform.Base.Equal(dec("2.02")), "got %s", b.Platform.Base)
}

func TestCompute_TierSplit(t *testing.T) {
	tier := &Tier{
		ID:                           "gold",
		PayoutTokenBoostMultiplier:   1.0,
		PlatformTokenBoostMultiplier: 1.0,
		PayoutTokenSplitPercentage:   0.60,
		PlatformTokenSplitPercentage: 0.30,
	}

	b := Compute(9.0, 10.0, "FLAT", tier)

	assert.Equal(t, reward.KindFlat, b.Kind)
	assert.False(t, b.Boosted)
	assert.True(t, b.Payout.Base.Equal(dec("5.4")), "got %s", b.Payout.Base)
	assert.True(t, b.Platform.Base.Equal(dec("2.7")), "got %s", b.Platform.Base)
}

func TestCompute_BoostedAgainstAdvertisedAmount(t *testing.T) {
	tier := &Tier{
		ID:                           "platinum",
		PayoutTokenBoostMultiplier:   2.0,
		PlatformTokenBoostMultiplier: 1.5,
		PayoutTokenSplitPercentage:   0.45,
		PlatformTokenSplitPercentage: 0.45,
	}

	b := Compute(9.0, 10.0, "FLAT", tier)

	assert.True(t, b.Boosted)
	// baseline from the net amount
	assert.True(t, b.Payout.Base.Equal(dec("4.05")), "got %s", b.Payout.Base)
	// boosted figure from the advertised (pre-fee) amount
	assert.True(t, b.Payout.Boosted.Equal(dec("9")), "got %s", b.Payout.Boosted)
	assert.True(t, b.Platform.Boosted.Equal(dec("6.75")), "got %s", b.Platform.Boosted)
}

func TestCompute_FlatRequiresExactKindMatch(t *testing.T) {
	assert.Equal(t, reward.KindFlat, Compute(1, 1, "FLAT", nil).Kind)
	assert.Equal(t, reward.KindPercentage, Compute(1, 1, "flat", nil).Kind)
	assert.Equal(t, reward.KindPercentage, Compute(1, 1, "Flat", nil).Kind)
	assert.Equal(t, reward.KindPercentage, Compute(1, 1, "PERCENTAGE", nil).Kind)
	assert.Equal(t, reward.KindPercentage, Compute(1, 1, "", nil).Kind)
}

func TestCompute_AmountsRoundDown(t *testing.T) {
	// 4.5 * 0.45 = 2.025 -> 2.02, never 2.03
	b := Compute(4.5, 5.0, "PERCENTAGE", nil)
	assert.True(t, b.Payout.Base.Equal(dec("2.02")))
}

func TestTier_Boosted(t *testing.T) {
	assert.False(t, (*Tier)(nil).Boosted())
	assert.False(t, (&Tier{PayoutTokenBoostMultiplier: 1.0, PlatformTokenBoostMultiplier: 1.0}).Boosted())
	assert.True(t, (&Tier{PayoutTokenBoostMultiplier: 1.5, PlatformTokenBoostMultiplier: 1.0}).Boosted())
	assert.True(t, (&Tier{PayoutTokenBoostMultiplier: 1.0, PlatformTokenBoostMultiplier: 2.0}).Boosted())
}
