// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingModel_Heading(t *testing.T) {
	t.Parallel()

	m := DefaultParams().HeadingModel()

	tests := []struct {
		offset, want float64
	}{
		{0, 0},
		{100, 80},
		{-100, -80},
		{250, 200},
		{1000, 200},
		{-1000, -200},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, m.Heading(tt.offset), eps, "Heading(%v)", tt.offset)
	}
	assert.Equal(t, 200.0, m.Limit())
}

func TestHeadingModel_ComputeHeading(t *testing.T) {
	t.Parallel()

	m := HeadingModel{Damping: 0.8, HalfRange: 250}

	// Window 1280 wide: centre at 640.
	assert.InDelta(t, 0.0, m.ComputeHeading(640, 1280), eps)
	assert.InDelta(t, 80.0, m.ComputeHeading(740.9, 1280), eps, "offset truncates to 100")
	assert.InDelta(t, -80.0, m.ComputeHeading(539.1, 1280), eps, "offset truncates toward zero")
	assert.InDelta(t, 200.0, m.ComputeHeading(5000, 1280), eps)
	assert.InDelta(t, -200.0, m.ComputeHeading(-5000, 1280), eps)
}

func TestHeadingModel_AlwaysWithinLimit(t *testing.T) {
	t.Parallel()

	m := HeadingModel{Damping: 0.8, HalfRange: 250}
	for x := -2000.0; x <= 4000; x += 13.3 {
		h := m.ComputeHeading(x, 1920)
		assert.LessOrEqual(t, h, m.Limit())
		assert.GreaterOrEqual(t, h, -m.Limit())
	}
}
