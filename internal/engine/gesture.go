package engine

// DefaultSwipeThreshold is the horizontal distance, in cells, a drag
// must cover before it counts as a swipe.
const DefaultSwipeThreshold = 50

// Gesture turns raw horizontal press/move/release coordinates into a
// discrete swipe. It tracks at most one gesture at a time and keeps no
// state between gestures: End always discards the recorded coordinates,
// so a drag below the threshold leaves nothing behind.
type Gesture struct {
	threshold int
	active    bool
	startX    int
	lastX     int
}

// NewGesture creates a recognizer. A non-positive threshold falls back
// to DefaultSwipeThreshold.
func NewGesture(threshold int) *Gesture {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Gesture{threshold: threshold}
}

// Begin records the press position and starts a gesture.
func (g *Gesture) Begin(x int) {
	g.active = true
	g.startX = x
	g.lastX = x
}

// Move records the latest drag position. Ignored unless a gesture is
// in progress.
func (g *Gesture) Move(x int) {
	if !g.active {
		return
	}
	g.lastX = x
}

// End finishes the gesture and reports the swipe, if any. Dragging left
// (start ahead of end) means Next; dragging right means Previous.
func (g *Gesture) End() (Direction, bool) {
	if !g.active {
		return Next, false
	}
	distance := g.startX - g.lastX
	g.active = false
	g.startX = 0
	g.lastX = 0

	switch {
	case distance > g.threshold:
		return Next, true
	case distance < -g.threshold:
		return Previous, true
	default:
		return Next, false
	}
}
