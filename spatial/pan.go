// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"math"

	"github.com/ik5/audspace/utils"
)

// Gain is the amplitude and pan applied to one channel.
type Gain struct {
	Amplitude float64
	Pan       float64
}

// DistanceWeight is 1 when the listener is level with the source and falls
// linearly to 0 at ampRange.
func DistanceWeight(sourceY, listenerY, ampRange float64) float64 {
	d := utils.Clamp(math.Abs(sourceY-listenerY), 0, ampRange)

	return utils.MapRange(d, 0, ampRange, 1, 0)
}

// AngleWeight is a raised cosine lobe: 1 facing the microphone, 0 facing away.
func AngleWeight(heading, micAngle float64) float64 {
	return (math.Cos(radians(heading-micAngle)) + 1) / 2
}

// WrapAngle brings any angle difference into [-180, 180]. Whole turns are
// dropped first; then values at or past +180 lose 360 and values at or
// past -180 gain 360, so +180 maps to -180 and -180 to +180.
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg >= 180 {
		return deg - 360
	}
	if deg <= -180 {
		return deg + 360
	}

	return deg
}

// PanFor maps the wrapped heading-to-microphone angle onto [-1, 1].
// A microphone to the listener's right (negative relative angle) pans
// right; beyond panOffset degrees pan saturates.
func PanFor(heading, micAngle, panOffset float64) float64 {
	relative := WrapAngle(heading - micAngle)

	if relative <= 0 {
		return utils.MapRange(utils.Clamp(relative, -panOffset, 0), -panOffset, 0, 1, 0)
	}

	return utils.MapRange(utils.Clamp(relative, 0, panOffset), 0, panOffset, 0, -1)
}

// Spatialize computes one channel's gain.
func Spatialize(heading, micAngle, sourceY, listenerY, ampRange, panOffset float64) Gain {
	return Gain{
		Amplitude: AngleWeight(heading, micAngle) * DistanceWeight(sourceY, listenerY, ampRange),
		Pan:       PanFor(heading, micAngle, panOffset),
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
