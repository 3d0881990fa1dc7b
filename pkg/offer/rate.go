package offer

import (
	"fmt"
	"sort"

	"github.com/Ramsey-B/fern/pkg/reward"
)

// Rate is a normalized, fee-applied sub-rate attached to a merchant offer.
// NumericAmount carries the post-fee value shown to the user; the advertised
// pre-fee value is retained strictly for downstream boost-multiplier math and
// is never displayed directly.
type Rate struct {
	Kind             reward.Kind `json:"kind"`
	Name             string      `json:"name"`
	Amount           string      `json:"amount"`
	NumericAmount    float64     `json:"numeric_amount"`
	AdvertisedAmount float64     `json:"advertised_amount"`
}

// NormalizeRates converts the raw sub-rates from a merchant record into
// canonical form: rate kind resolved, platform fee applied, display name
// prefix stripped, unresolvable entries dropped. The result is sorted with
// all percentage rates before all flat rates, each group by net amount
// descending, preserving the original order on ties.
func NormalizeRates(raw []RawRate) []Rate {
	rates := make([]Rate, 0, len(raw))
	for _, r := range raw {
		kind, ok := reward.ResolveKind(r.Kind, r.Type, r.Name)
		if !ok {
			continue
		}

		amount, ok := reward.CoerceAmount(r.Amount.Ptr())
		if !ok {
			continue
		}

		net := reward.NetAmount(amount)
		rates = append(rates, Rate{
			Kind:             kind,
			Name:             reward.StripNamePrefix(r.Name),
			Amount:           formatRateAmount(kind, net),
			NumericAmount:    net,
			AdvertisedAmount: amount,
		})
	}

	sort.SliceStable(rates, func(i, j int) bool {
		if rates[i].Kind != rates[j].Kind {
			return rates[i].Kind == reward.KindPercentage
		}
		return rates[i].NumericAmount > rates[j].NumericAmount
	})

	return rates
}

func formatRateAmount(kind reward.Kind, net float64) string {
	if kind == reward.KindFlat {
		return fmt.Sprintf("$%s", reward.FormatDollars(net))
	}
	return fmt.Sprintf("%s%%", reward.FormatPercent(net))
}
