// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
// Input is clamped to [-1, 1]; the negative side scales by 32768 so that
// -1 reaches math.MinInt16 and +1 reaches math.MaxInt16.
func Float32ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 32767
	case x <= -1:
		return -32768
	case x < 0:
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}

// Float32ToPCM converts a normalized sample to a signed integer of the
// given bit depth, as used by go-audio IntBuffer.
func Float32ToPCM(x float32, bitDepth int) int {
	if bitDepth == 16 {
		return int(Float32ToInt16(x))
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	full := float64(int64(1) << (bitDepth - 1))
	if x < 0 {
		return int(float64(x) * full)
	}

	return int(float64(x) * (full - 1))
}

// PCMToFloat32 normalizes a signed integer sample of the given bit depth to
// [-1, 1). Unknown depths are treated as 16-bit.
func PCMToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
	}

	return float32(v) / 32768.0
}
