package reward

import (
	"fmt"
	"strconv"
	"strings"
)

// FallbackLabel is shown when a record has no usable rate.
const FallbackLabel = "View details"

// FormatPercent renders a percentage amount with trailing zeros stripped from
// the two-decimal form: 4.50 -> "4.5", 9.00 -> "9".
func FormatPercent(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// FormatDollars renders a dollar amount with exactly two decimals. Currency
// keeps its trailing zeros.
func FormatDollars(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// BuildLabel renders the user-facing reward string for an upstream rate,
// with the platform fee already deducted. Missing or unparseable inputs
// produce the fallback string; a zero rate is a real rate and renders as
// "Up to 0% back". Pure and idempotent.
func BuildLabel(rateType string, rateAmount any, fallback string) string {
	if fallback == "" {
		fallback = FallbackLabel
	}

	normalized, ok := Normalize(rateType, rateAmount)
	if !ok {
		return fallback
	}

	net := NetAmount(normalized.Amount)
	if normalized.Kind == KindFlat {
		return fmt.Sprintf("Up to $%s back", FormatDollars(net))
	}
	return fmt.Sprintf("Up to %s%% back", FormatPercent(net))
}
