package ndim

import (
	"fmt"
	"iter"
)

// Box is an axis-aligned region with inclusive bounds: it covers every
// position p with Front[i] <= p[i] <= Back[i] on all axes.
//
// A box with Front[i] > Back[i] on some axis is degenerate: it is a
// legitimate empty region with size 0 which iterates as an empty sequence.
type Box struct {
	Front, Back Position
}

// NewBox returns the box spanning front to back, both included.
func NewBox(front, back Position) Box {
	return Box{Front: front.Clone(), Back: back.Clone()}
}

// BoxFromShape returns the box of the given shape anchored at front.
func BoxFromShape(front, shape Position) Box {
	back := make(Position, len(shape))
	for i := range shape {
		back[i] = front[i] + shape[i] - 1
	}
	return Box{Front: front.Clone(), Back: back}
}

// CenteredBox returns the hypercube of the given radius centered on the
// origin, i.e. [-radius, radius] along every axis.
func CenteredBox(radius, dim int) Box {
	return Box{Front: Full(dim, -radius), Back: Full(dim, radius)}
}

// Dim returns the number of axes.
func (b Box) Dim() int { return len(b.Front) }

// Shape returns the per-axis extent back - front + 1.
func (b Box) Shape() Position {
	shape := make(Position, len(b.Front))
	for i := range shape {
		shape[i] = b.Back[i] - b.Front[i] + 1
	}
	return shape
}

// Size returns the number of positions in the box, 0 if degenerate.
func (b Box) Size() int {
	return Size(b.Shape())
}

// IsEmpty reports whether the box covers no position.
func (b Box) IsEmpty() bool {
	for i := range b.Front {
		if b.Front[i] > b.Back[i] {
			return true
		}
	}
	return len(b.Front) == 0
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Position) bool {
	for i := range p {
		if p[i] < b.Front[i] || p[i] > b.Back[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two boxes have the same bounds.
func (b Box) Equal(other Box) bool {
	return b.Front.Equal(other.Front) && b.Back.Equal(other.Back)
}

// Translated returns the box shifted by d; the shape is preserved.
func (b Box) Translated(d Position) Box {
	return Box{Front: b.Front.Plus(d), Back: b.Back.Plus(d)}
}

// Intersect returns the intersection of two boxes, possibly degenerate.
func (b Box) Intersect(other Box) Box {
	front := make(Position, len(b.Front))
	back := make(Position, len(b.Back))
	for i := range front {
		front[i] = max(b.Front[i], other.Front[i])
		back[i] = min(b.Back[i], other.Back[i])
	}
	return Box{Front: front, Back: back}
}

// Grow returns the Minkowski sum of b and w: every position reachable from b
// by an offset in w.
func (b Box) Grow(w Box) Box {
	return Box{Front: b.Front.Plus(w.Front), Back: b.Back.Plus(w.Back)}
}

// Shrink returns the erosion of b by w: the positions p of b such that the
// whole window w translated to p stays inside b. It is the inverse of Grow
// and may be degenerate.
func (b Box) Shrink(w Box) Box {
	return Box{Front: b.Front.Minus(w.Front), Back: b.Back.Minus(w.Back)}
}

// Positions iterates the box in row-major order, axis 0 varying fastest.
// Each yielded position is an independent copy. A degenerate box yields
// nothing.
func (b Box) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if b.IsEmpty() {
			return
		}
		p := b.Front.Clone()
		for {
			if !yield(p.Clone()) {
				return
			}
			if !b.Next(p) {
				return
			}
		}
	}
}

// Next advances p to the next position of the box in row-major order,
// in place. It returns false when p was the last position; p is then
// reset to the front of the box.
func (b Box) Next(p Position) bool {
	for i := range p {
		if p[i] < b.Back[i] {
			p[i]++
			return true
		}
		p[i] = b.Front[i]
	}
	return false
}

// String formats the box as "[front .. back]".
func (b Box) String() string {
	return fmt.Sprintf("[%v .. %v]", b.Front, b.Back)
}
