// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// MapRange linearly re-maps v from [inLo, inHi] onto [outLo, outHi].
// The result is not clamped; clamp v first when the output must stay in range.
// A degenerate input range returns outLo.
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}

	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}
