package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drag(dx float64) *Gesture {
	g := &Gesture{}
	g.Begin(200)
	g.Move(200 + dx)
	return g
}

func TestReleaseThresholdDeterminism(t *testing.T) {
	cases := []struct {
		dx   float64
		want Decision
	}{
		{250, DecisionYes},
		{101, DecisionYes},
		{100.5, DecisionYes},
		{100, DecisionNone}, // boundary is exclusive
		{99, DecisionNone},
		{0, DecisionNone},
		{-99, DecisionNone},
		{-100, DecisionNone},
		{-100.5, DecisionNo},
		{-101, DecisionNo},
		{-250, DecisionNo},
	}
	for _, tc := range cases {
		g := drag(tc.dx)
		assert.Equal(t, tc.want, g.Release(), "dx=%v", tc.dx)
	}
}

func TestReleaseResetsTracker(t *testing.T) {
	g := drag(150)
	assert.Equal(t, DecisionYes, g.Release())

	assert.False(t, g.Active())
	assert.Zero(t, g.Offset())
	// A second release without a new drag decides nothing.
	assert.Equal(t, DecisionNone, g.Release())
}

func TestMoveIgnoredWhenInactive(t *testing.T) {
	g := &Gesture{}
	g.Move(500)
	assert.Zero(t, g.Offset())
	assert.Equal(t, DecisionNone, g.Release())
}

func TestConfidenceSaturation(t *testing.T) {
	g := drag(75)
	yes, no := g.Confidence()
	assert.InDelta(t, 0.5, yes, 1e-9)
	assert.Zero(t, no)

	g = drag(150)
	yes, no = g.Confidence()
	assert.Equal(t, 1.0, yes)
	assert.Zero(t, no)

	g = drag(400)
	yes, _ = g.Confidence()
	assert.Equal(t, 1.0, yes)

	g = drag(-150)
	yes, no = g.Confidence()
	assert.Zero(t, yes)
	assert.Equal(t, 1.0, no)
}

func TestConfidenceMonotonic(t *testing.T) {
	prev := -1.0
	for dx := 0.0; dx <= 160; dx += 10 {
		g := drag(dx)
		yes, _ := g.Confidence()
		assert.GreaterOrEqual(t, yes, prev, "dx=%v", dx)
		prev = yes
	}
}

func TestRotationProportional(t *testing.T) {
	g := drag(125)
	assert.InDelta(t, 5.0, g.Rotation(), 1e-9)

	g = drag(-50)
	assert.InDelta(t, -2.0, g.Rotation(), 1e-9)
}

func TestCancelDiscardsDrag(t *testing.T) {
	g := drag(300)
	g.Cancel()
	assert.Equal(t, DecisionNone, g.Release())
}
