package reward

import "math"

// PlatformFeeRate is the share of every advertised rate the platform retains.
const PlatformFeeRate = 0.10

// NetAmount applies the platform fee to an advertised rate amount, rounding
// down to two decimal places. Flooring guarantees the displayed or credited
// amount never exceeds what will actually be paid out after the platform's
// cut. Applies identically to percentage and flat rates.
func NetAmount(advertised float64) float64 {
	return math.Floor(advertised*(1-PlatformFeeRate)*100) / 100
}
