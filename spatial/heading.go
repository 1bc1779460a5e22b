// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"math"

	"github.com/ik5/audspace/utils"
)

// HeadingModel turns horizontal pointer displacement into a facing angle.
type HeadingModel struct {
	// Damping scales the clamped offset into degrees.
	Damping float64
	// HalfRange bounds the offset on either side of centre.
	HalfRange float64
}

// Heading returns Damping * clamp(offset, -HalfRange, HalfRange).
func (m HeadingModel) Heading(offset float64) float64 {
	return m.Damping * utils.Clamp(offset, -m.HalfRange, m.HalfRange)
}

// ComputeHeading measures cursorX from the centre of a window windowWidth
// wide. The offset is truncated to whole units before clamping.
func (m HeadingModel) ComputeHeading(cursorX, windowWidth float64) float64 {
	return m.Heading(math.Trunc(cursorX - windowWidth/2))
}

// Limit is the largest heading magnitude the model can produce.
func (m HeadingModel) Limit() float64 {
	return math.Abs(m.Damping * m.HalfRange)
}
