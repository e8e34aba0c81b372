package entities

import "math"

// MinorUnits converts a major-unit amount (e.g. 19.99) to integer minor units
// (1999). The product is rounded, not truncated: 19.99*100 is
// 1998.9999999999998 in float64.
func MinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}
