package reward

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		rateType string
		expected Kind
		ok       bool
	}{
		{name: "fixed maps to flat", rateType: "fixed", expected: KindFlat, ok: true},
		{name: "percentage maps to percentage", rateType: "percentage", expected: KindPercentage, ok: true},
		{name: "canonical FLAT passes through", rateType: "FLAT", expected: KindFlat, ok: true},
		{name: "canonical PERCENTAGE passes through", rateType: "PERCENTAGE", expected: KindPercentage, ok: true},
		{name: "unknown non-empty defaults to percentage", rateType: "points", expected: KindPercentage, ok: true},
		{name: "empty is not a kind", rateType: "", ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kind, ok := ParseKind(test.rateType)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.expected, kind)
			}
		})
	}
}

func TestResolveKind_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		rateType string
		rateName string
		expected Kind
		ok       bool
	}{
		{name: "kind field wins", kind: "FLAT", rateType: "percentage", rateName: "3% Cash Back", expected: KindFlat, ok: true},
		{name: "type field when kind missing", kind: "", rateType: "fixed", rateName: "3% Cash Back", expected: KindFlat, ok: true},
		{name: "name prefix as last resort", kind: "", rateType: "", rateName: "3% Cash Back", expected: KindPercentage, ok: true},
		{name: "dollar name prefix infers flat", kind: "", rateType: "", rateName: "$10 New Customer Bonus", expected: KindFlat, ok: true},
		{name: "nothing usable", kind: "", rateType: "", rateName: "Cash Back", ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kind, ok := ResolveKind(test.kind, test.rateType, test.rateName)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.expected, kind)
			}
		})
	}
}

func TestStripNamePrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "percent prefix", input: "3% Cash Back", expected: "Cash Back"},
		{name: "decimal percent prefix", input: "4.5% Online Purchases", expected: "Online Purchases"},
		{name: "dollar prefix", input: "$10 New Customer Bonus", expected: "New Customer Bonus"},
		{name: "no prefix untouched", input: "Cash Back", expected: "Cash Back"},
		{name: "number mid-name untouched", input: "Back to School 20", expected: "Back to School 20"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, StripNamePrefix(test.input))
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{name: "float passes through", input: 4.5, expected: 4.5, ok: true},
		{name: "int converts", input: 4, expected: 4.0, ok: true},
		{name: "numeric string parses", input: "6.75", expected: 6.75, ok: true},
		{name: "padded string parses", input: " 2.5 ", expected: 2.5, ok: true},
		{name: "zero is valid", input: 0.0, expected: 0, ok: true},
		{name: "nil is missing", input: nil, ok: false},
		{name: "garbage string is missing", input: "up to 5%", ok: false},
		{name: "NaN is missing", input: math.NaN(), ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			amount, ok := CoerceAmount(test.input)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.expected, amount)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	normalized, ok := Normalize("fixed", "5")
	assert.True(t, ok)
	assert.Equal(t, Normalized{Kind: KindFlat, Amount: 5}, normalized)

	_, ok = Normalize("", 5.0)
	assert.False(t, ok)

	_, ok = Normalize("percentage", nil)
	assert.False(t, ok)
}
