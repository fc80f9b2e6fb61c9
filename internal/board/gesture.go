package board

// ActivationThreshold is the pointer travel, in terminal cells, past
// which a press on a card becomes a drag instead of a click.
const ActivationThreshold = 2

// OutcomeKind classifies how a pointer gesture ended.
type OutcomeKind int

// Gesture outcomes.
const (
	OutcomeNone  OutcomeKind = iota // Release without a preceding press on a card
	OutcomeClick                    // Release below the activation threshold
	OutcomeDrop                     // Release after the threshold was exceeded
)

// Outcome is the result of releasing a pointer gesture.
type Outcome struct {
	CardID string
	Kind   OutcomeKind
}

// Recognizer classifies pointer gestures on cards as clicks or drags
// using a distance threshold. It is the only place that looks at raw
// pointer coordinates; everything downstream works with DropTargets.
type Recognizer struct {
	cardID   string
	originX  int
	originY  int
	pressed  bool
	dragging bool
}

// Press records a pointer press on a card.
func (r *Recognizer) Press(cardID string, x, y int) {
	r.cardID = cardID
	r.originX = x
	r.originY = y
	r.pressed = true
	r.dragging = false
}

// Move feeds a pointer movement. It returns true exactly once, when
// the movement first exceeds the activation threshold and the gesture
// becomes a drag.
func (r *Recognizer) Move(x, y int) bool {
	if !r.pressed || r.dragging {
		return false
	}
	dx := abs(x - r.originX)
	dy := abs(y - r.originY)
	if dx >= ActivationThreshold || dy >= ActivationThreshold {
		r.dragging = true
		return true
	}
	return false
}

// Dragging returns true once the threshold has been exceeded.
func (r *Recognizer) Dragging() bool {
	return r.dragging
}

// Card returns the card the gesture started on, or "".
func (r *Recognizer) Card() string {
	return r.cardID
}

// Release ends the gesture and reports its classification.
func (r *Recognizer) Release() Outcome {
	if !r.pressed {
		return Outcome{Kind: OutcomeNone}
	}
	out := Outcome{CardID: r.cardID}
	if r.dragging {
		out.Kind = OutcomeDrop
	} else {
		out.Kind = OutcomeClick
	}
	r.pressed = false
	r.dragging = false
	r.cardID = ""
	return out
}

// Reset abandons any gesture in progress.
func (r *Recognizer) Reset() {
	r.pressed = false
	r.dragging = false
	r.cardID = ""
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
