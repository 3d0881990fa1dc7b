// Package boost computes the payout-token / platform-token split of a net
// reward, including per-tier boost multipliers.
package boost

// Default split applied when a user has no tier assigned. The remaining 10%
// is the platform's own fee, already deducted upstream, and is not displayed
// as a third bucket.
const (
	DefaultPayoutSplit   = 0.45
	DefaultPlatformSplit = 0.45
)

// Tier is a user-tier classification loaded from the reference table and
// treated as immutable configuration for the session. Split percentages are
// stored as decimals (0.45) and converted to whole percentages only for
// display. Multipliers are >= 1.0.
type Tier struct {
	ID                           string  `json:"id" db:"id"`
	Name                         string  `json:"name" db:"name"`
	PayoutTokenBoostMultiplier   float64 `json:"payout_token_boost_multiplier" db:"payout_token_boost_multiplier"`
	PlatformTokenBoostMultiplier float64 `json:"platform_token_boost_multiplier" db:"platform_token_boost_multiplier"`
	PayoutTokenSplitPercentage   float64 `json:"payout_token_split_percentage" db:"payout_token_split_percentage"`
	PlatformTokenSplitPercentage float64 `json:"platform_token_split_percentage" db:"platform_token_split_percentage"`
}

// Boosted reports whether the tier carries any multiplier above 1.0, which is
// when the UI shows the struck-through baseline next to the boosted figure.
func (t *Tier) Boosted() bool {
	if t == nil {
		return false
	}
	return t.PayoutTokenBoostMultiplier > 1.0 || t.PlatformTokenBoostMultiplier > 1.0
}

func (t *Tier) payoutSplit() float64 {
	if t == nil {
		return DefaultPayoutSplit
	}
	return t.PayoutTokenSplitPercentage
}

func (t *Tier) platformSplit() float64 {
	if t == nil {
		return DefaultPlatformSplit
	}
	return t.PlatformTokenSplitPercentage
}

func (t *Tier) payoutMultiplier() float64 {
	if t == nil {
		return 1.0
	}
	return t.PayoutTokenBoostMultiplier
}

func (t *Tier) platformMultiplier() float64 {
	if t == nil {
		return 1.0
	}
	return t.PlatformTokenBoostMultiplier
}
