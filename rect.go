package quadtree

// Rect is an axis-aligned rectangle. The tree expects MinX <= MaxX and
// MinY <= MaxY but tolerates degenerate (point or line) rectangles
// everywhere.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Intersects reports whether r and other share any point. The test is
// inclusive: rectangles touching only at an edge or corner intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX <= other.MaxX && r.MaxX >= other.MinX &&
		r.MinY <= other.MaxY && r.MaxY >= other.MinY
}

// Contains reports whether other lies entirely within r, boundary
// inclusive.
func (r Rect) Contains(other Rect) bool {
	return r.MinX <= other.MinX && other.MaxX <= r.MaxX &&
		r.MinY <= other.MinY && other.MaxY <= r.MaxY
}

func (r Rect) width() float64  { return r.MaxX - r.MinX }
func (r Rect) height() float64 { return r.MaxY - r.MinY }

func (r Rect) midX() float64 { return (r.MinX + r.MaxX) / 2 }
func (r Rect) midY() float64 { return (r.MinY + r.MaxY) / 2 }

// Quadrant indices. The four quadrants of a node tile its bounds exactly,
// split at the midpoint on both axes.
const (
	quadSW = iota
	quadSE
	quadNW
	quadNE
	numQuadrants
)

// quadrant returns the q'th quadrant of r.
func (r Rect) quadrant(q int) Rect {
	mx, my := r.midX(), r.midY()
	switch q {
	case quadSW:
		return Rect{r.MinX, r.MinY, mx, my}
	case quadSE:
		return Rect{mx, r.MinY, r.MaxX, my}
	case quadNW:
		return Rect{r.MinX, my, mx, r.MaxY}
	default:
		return Rect{mx, my, r.MaxX, r.MaxY}
	}
}

// containingQuadrant returns the single quadrant of r that fully contains
// b. There is none when b straddles the midpoint on either axis, or when
// b protrudes outside r itself.
func (r Rect) containingQuadrant(b Rect) (int, bool) {
	mx, my := r.midX(), r.midY()

	var q int
	switch {
	case b.MaxX <= mx:
		// west
	case b.MinX >= mx:
		q |= 1 // east
	default:
		return 0, false
	}
	switch {
	case b.MaxY <= my:
		// south
	case b.MinY >= my:
		q |= 2 // north
	default:
		return 0, false
	}

	if !r.quadrant(q).Contains(b) {
		return 0, false
	}
	return q, true
}
