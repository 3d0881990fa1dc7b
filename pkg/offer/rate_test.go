package offer

import (
	"testing"

	"github.com/Ramsey-B/fern/pkg/reward"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRate(kind, rateType, name string, amount float64) RawRate {
	return RawRate{Kind: kind, Type: rateType, Name: name, Amount: FlexFloat{Value: amount, Valid: true}}
}

func TestNormalizeRates_SortsPercentageBeforeFlat(t *testing.T) {
	raw := []RawRate{
		rawRate("", "fixed", "$10 Bonus", 10),
		rawRate("", "percentage", "2% Cash Back", 2),
		rawRate("", "fixed", "$5 Bonus", 5),
		rawRate("", "percentage", "6% Electronics", 6),
	}

	rates := NormalizeRates(raw)
	require.Len(t, rates, 4)

	assert.Equal(t, reward.KindPercentage, rates[0].Kind)
	assert.Equal(t, "Electronics", rates[0].Name)
	assert.Equal(t, reward.KindPercentage, rates[1].Kind)
	assert.Equal(t, "Cash Back", rates[1].Name)
	assert.Equal(t, reward.KindFlat, rates[2].Kind)
	assert.Equal(t, 9.0, rates[2].NumericAmount)
	assert.Equal(t, reward.KindFlat, rates[3].Kind)
	assert.Equal(t, 4.5, rates[3].NumericAmount)
}

func TestNormalizeRates_StableOnTies(t *testing.T) {
	raw := []RawRate{
		rawRate("", "percentage", "First 3%", 3),
		rawRate("", "percentage", "Second 3%", 3),
	}

	rates := NormalizeRates(raw)
	require.Len(t, rates, 2)
	assert.Equal(t, "First 3%", rates[0].Name)
	assert.Equal(t, "Second 3%", rates[1].Name)
}

func TestNormalizeRates_FeeApplied(t *testing.T) {
	rates := NormalizeRates([]RawRate{rawRate("", "percentage", "5% Cash Back", 5)})
	require.Len(t, rates, 1)

	assert.Equal(t, 4.5, rates[0].NumericAmount)
	assert.Equal(t, 5.0, rates[0].AdvertisedAmount)
	assert.Equal(t, "4.5%", rates[0].Amount)
	assert.Equal(t, "Cash Back", rates[0].Name)
}

func TestNormalizeRates_NetNeverExceedsAdvertised(t *testing.T) {
	raw := []RawRate{
		rawRate("", "percentage", "a", 0),
		rawRate("", "percentage", "b", 0.01),
		rawRate("", "fixed", "c", 3.33),
		rawRate("", "fixed", "d", 100),
	}

	for _, rate := range NormalizeRates(raw) {
		assert.LessOrEqual(t, rate.NumericAmount, rate.AdvertisedAmount)
	}
}

func TestNormalizeRates_DropsUnresolvableEntries(t *testing.T) {
	raw := []RawRate{
		{Name: "Cash Back"}, // no kind, no type, no name prefix, no amount
		rawRate("", "percentage", "3% Cash Back", 3),
		{Type: "percentage", Name: "No Amount"},
	}

	rates := NormalizeRates(raw)
	require.Len(t, rates, 1)
	assert.Equal(t, "Cash Back", rates[0].Name)
}

func TestNormalizeRates_KindChainFromName(t *testing.T) {
	rates := NormalizeRates([]RawRate{rawRate("", "", "$10 New Customer Bonus", 10)})
	require.Len(t, rates, 1)
	assert.Equal(t, reward.KindFlat, rates[0].Kind)
	assert.Equal(t, "New Customer Bonus", rates[0].Name)
	assert.Equal(t, "$9.00", rates[0].Amount)
}
