// Package reward implements the offer reward pipeline primitives: rate
// normalization, platform fee deduction, and reward label formatting.
package reward

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the canonical rate kind.
type Kind string

const (
	// KindPercentage is a percentage-of-sale rate.
	KindPercentage Kind = "PERCENTAGE"
	// KindFlat is a fixed dollar rate.
	KindFlat Kind = "FLAT"
)

// ParseKind maps an upstream rate type string onto a canonical Kind.
// Upstream encodings vary: "fixed" means a dollar amount, "percentage" a
// percentage, and already-canonical values pass through. Any other non-empty
// value is treated as a percentage rather than rejected, since upstream feeds
// have shipped unannounced type strings before. An empty value reports ok=false.
func ParseKind(rateType string) (Kind, bool) {
	switch rateType {
	case "":
		return "", false
	case "fixed", string(KindFlat):
		return KindFlat, true
	case "percentage", string(KindPercentage):
		return KindPercentage, true
	default:
		return KindPercentage, true
	}
}

// IsFlat reports whether a canonical kind string is the flat-dollar kind.
// Only an exact "FLAT" match qualifies; everything else is percentage.
func IsFlat(kind string) bool {
	return kind == string(KindFlat)
}

// Matches a leading "{number}%" or "${number}" amount prefix on a rate name.
var namePrefixPattern = regexp.MustCompile(`^(\$\d+(\.\d+)?|\d+(\.\d+)?[%$])\s+`)

// InferKindFromName inspects a rate display name like "3% Cash Back" or
// "$10 New Customer Bonus" for a leading amount prefix.
func InferKindFromName(name string) (Kind, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}
	if strings.HasPrefix(trimmed, "$") {
		return KindFlat, true
	}
	if m := namePrefixPattern.FindString(trimmed); m != "" {
		if strings.Contains(m, "%") {
			return KindPercentage, true
		}
		return KindFlat, true
	}
	return "", false
}

// ResolveKind resolves a rate kind from the upstream heuristics in explicit
// priority order: the record's kind field, then its type field, then the
// amount prefix on the display name. Reports ok=false when none apply.
func ResolveKind(kind, rateType, name string) (Kind, bool) {
	if k, ok := ParseKind(kind); ok {
		return k, true
	}
	if k, ok := ParseKind(rateType); ok {
		return k, true
	}
	return InferKindFromName(name)
}

// StripNamePrefix removes a leading "{number}{%|$} " amount prefix from a rate
// display name, e.g. "3% Cash Back" -> "Cash Back".
func StripNamePrefix(name string) string {
	return namePrefixPattern.ReplaceAllString(strings.TrimSpace(name), "")
}

// CoerceAmount converts an upstream rate amount into a float64. Upstream
// records carry amounts as numbers or numeric strings interchangeably.
// Reports ok=false for nil, unparseable strings, NaN, and infinities; callers
// treat that the same as a missing amount.
func CoerceAmount(value any) (float64, bool) {
	var amount float64
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		amount = v
	case float32:
		amount = float64(v)
	case int:
		amount = float64(v)
	case int64:
		amount = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		amount = parsed
	default:
		return 0, false
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	return amount, true
}

// Normalized is the canonical {kind, amount} pair produced from the
// heterogeneous upstream rate encodings.
type Normalized struct {
	Kind   Kind
	Amount float64
}

// Normalize converts an upstream (rateType, rateAmount) pair into canonical
// form. Reports ok=false when either half is missing or unparseable; that is
// the fallback path, not an error.
func Normalize(rateType string, rateAmount any) (Normalized, bool) {
	kind, ok := ParseKind(rateType)
	if !ok {
		return Normalized{}, false
	}

	amount, ok := CoerceAmount(rateAmount)
	if !ok {
		return Normalized{}, false
	}

	return Normalized{Kind: kind, Amount: amount}, true
}
