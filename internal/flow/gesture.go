package flow

const (
	// decisionThreshold is the horizontal displacement a drag must strictly
	// exceed on release to commit an answer.
	decisionThreshold = 100.0
	// confidenceSpan is where the yes/no indicators reach full strength.
	confidenceSpan = 150.0
	// rotationDivisor converts displacement to card tilt, degrees.
	rotationDivisor = 25.0
)

type Decision int

const (
	DecisionNone Decision = iota
	DecisionYes
	DecisionNo
)

// Gesture tracks one horizontal drag over a binary question card. While the
// pointer is down it produces continuous feedback values; Release turns the
// final displacement into a discrete decision and resets the tracker.
type Gesture struct {
	active bool
	startX float64
	dx     float64
}

func (g *Gesture) Begin(x float64) {
	g.active = true
	g.startX = x
	g.dx = 0
}

func (g *Gesture) Move(x float64) {
	if !g.active {
		return
	}
	g.dx = x - g.startX
}

func (g *Gesture) Active() bool { return g.active }

// Offset is the current horizontal displacement from the press position.
func (g *Gesture) Offset() float64 { return g.dx }

// Rotation is the card tilt in degrees. Feedback only, never part of the
// decision rule.
func (g *Gesture) Rotation() float64 {
	return g.dx / rotationDivisor
}

// Confidence returns the opposing yes/no indicator strengths in [0, 1]. Each
// grows with displacement toward its side and saturates at confidenceSpan.
func (g *Gesture) Confidence() (yes, no float64) {
	return clamp01(g.dx / confidenceSpan), clamp01(-g.dx / confidenceSpan)
}

// Release commits the drag: past +threshold means yes, past -threshold means
// no, anything in between is discarded. The tracker resets either way.
func (g *Gesture) Release() Decision {
	if !g.active {
		return DecisionNone
	}
	dx := g.dx
	g.active = false
	g.dx = 0
	g.startX = 0

	switch {
	case dx > decisionThreshold:
		return DecisionYes
	case dx < -decisionThreshold:
		return DecisionNo
	default:
		return DecisionNone
	}
}

// Cancel abandons the drag without a decision.
func (g *Gesture) Cancel() {
	g.active = false
	g.dx = 0
	g.startX = 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
