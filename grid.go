package ndim

import (
	"fmt"
	"iter"
)

// Grid is the set of positions front + k⊙step that lie inside a bounding
// box, for non-negative integer k along each axis. The step is a positive
// per-axis stride.
//
// Grids are value types; all methods return fresh grids.
type Grid struct {
	box  Box
	step Position
}

// NewGrid returns the grid covering box with the given per-axis step.
// The back of the box is normalized down to the last reachable node, so
// that Back() is always a grid node of a non-empty grid. Step coordinates
// must be positive.
func NewGrid(box Box, step Position) Grid {
	b := NewBox(box.Front, box.Back)
	if !b.IsEmpty() {
		for i := range b.Back {
			b.Back[i] -= (b.Back[i] - b.Front[i]) % step[i]
		}
	}
	return Grid{box: b, step: step.Clone()}
}

// NewUniformGrid returns the grid covering box with the same step on every
// axis.
func NewUniformGrid(box Box, step int) Grid {
	return NewGrid(box, Full(box.Dim(), step))
}

// Box returns the normalized bounding box of the grid.
func (g Grid) Box() Box { return NewBox(g.box.Front, g.box.Back) }

// Front returns the first node.
func (g Grid) Front() Position { return g.box.Front.Clone() }

// Back returns the last node.
func (g Grid) Back() Position { return g.box.Back.Clone() }

// Step returns the per-axis stride.
func (g Grid) Step() Position { return g.step.Clone() }

// Dim returns the number of axes.
func (g Grid) Dim() int { return g.box.Dim() }

// Shape returns the number of nodes along each axis.
func (g Grid) Shape() Position {
	shape := make(Position, g.Dim())
	for i := range shape {
		n := g.box.Back[i] - g.box.Front[i]
		if n < 0 {
			shape[i] = 0
		} else {
			shape[i] = n/g.step[i] + 1
		}
	}
	return shape
}

// Size returns the number of nodes, 0 for a degenerate grid.
func (g Grid) Size() int {
	return Size(g.Shape())
}

// Contains reports whether p is a node of the grid.
func (g Grid) Contains(p Position) bool {
	for i := range p {
		if p[i] < g.box.Front[i] || p[i] > g.box.Back[i] {
			return false
		}
		if (p[i]-g.box.Front[i])%g.step[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two grids have the same bounds and step.
func (g Grid) Equal(other Grid) bool {
	return g.box.Equal(other.box) && g.step.Equal(other.step)
}

// Translated returns the grid shifted by d.
func (g Grid) Translated(d Position) Grid {
	return Grid{box: g.box.Translated(d), step: g.step.Clone()}
}

// Clamp returns the grid whose node set is exactly the intersection of the
// node set of g with bounds. The step is preserved: the front is advanced to
// the first in-bounds node of the same congruence class, and the back is
// lowered to the last. The result may be degenerate.
func (g Grid) Clamp(bounds Box) Grid {
	front := make(Position, g.Dim())
	back := make(Position, g.Dim())
	for i := range front {
		lo := g.box.Front[i]
		if d := bounds.Front[i] - lo; d > 0 {
			// First node >= bounds.Front on this axis.
			lo += (d + g.step[i] - 1) / g.step[i] * g.step[i]
		}
		hi := min(g.box.Back[i], bounds.Back[i])
		if hi >= lo {
			// Last node <= hi in the congruence class of lo.
			hi -= (hi - lo) % g.step[i]
		}
		front[i] = lo
		back[i] = hi
	}
	return Grid{box: Box{Front: front, Back: back}, step: g.step.Clone()}
}

// Positions iterates the grid nodes in row-major order, axis 0 varying
// fastest. Each yielded position is an independent copy. The sequence is
// restartable: ranging again starts over from the front.
func (g Grid) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if g.box.IsEmpty() {
			return
		}
		p := g.box.Front.Clone()
		for {
			if !yield(p.Clone()) {
				return
			}
			if !g.next(p) {
				return
			}
		}
	}
}

// next advances p by one node in row-major order, false after the last one.
func (g Grid) next(p Position) bool {
	for i := range p {
		if p[i]+g.step[i] <= g.box.Back[i] {
			p[i] += g.step[i]
			return true
		}
		p[i] = g.box.Front[i]
	}
	return false
}

// String formats the grid as "[front .. back] step s".
func (g Grid) String() string {
	return fmt.Sprintf("%v step %v", g.box, g.step)
}
