package filter

import "github.com/gogpu/ndim"

// Window is a structuring element: an ordered, immutable sequence of
// relative offsets defining the neighborhood a filter gathers around each
// output position. The order is fixed at construction, so reductions that
// care about neighbor order (weighted sums, custom statistics) are
// deterministic.
type Window struct {
	offsets []ndim.Position
	dim     int
}

// BoxWindow returns the full hypercube window of the given radius:
// every offset in [-radius, radius] along each of dim axes, enumerated in
// row-major order.
func BoxWindow(radius, dim int) Window {
	return WindowFromBox(ndim.CenteredBox(radius, dim))
}

// WindowFromBox returns the window covering every offset of b in row-major
// order.
func WindowFromBox(b ndim.Box) Window {
	offsets := make([]ndim.Position, 0, b.Size())
	for p := range b.Positions() {
		offsets = append(offsets, p)
	}
	return Window{offsets: offsets, dim: b.Dim()}
}

// LineWindow returns a 1-D window of the given length along one axis,
// centered on the origin. For even lengths the origin is rounded down, so
// offsets run from -(length/2) to length-length/2-1.
func LineWindow(axis, dim, length int) Window {
	radius := length / 2
	offsets := make([]ndim.Position, length)
	for i := range offsets {
		p := ndim.Zero(dim)
		p[axis] = i - radius
		offsets[i] = p
	}
	return Window{offsets: offsets, dim: dim}
}

// CrossWindow returns the origin plus its two immediate neighbors along
// every axis (the 2·dim+1 offsets of 4-connectivity in 2D).
func CrossWindow(dim int) Window {
	offsets := make([]ndim.Position, 0, 2*dim+1)
	for a := 0; a < dim; a++ {
		p := ndim.Zero(dim)
		p[a] = -1
		offsets = append(offsets, p)
	}
	offsets = append(offsets, ndim.Zero(dim))
	for a := 0; a < dim; a++ {
		p := ndim.Zero(dim)
		p[a] = 1
		offsets = append(offsets, p)
	}
	return Window{offsets: offsets, dim: dim}
}

// WindowFromOffsets returns a window over copies of the given offsets, in
// the given order. All offsets must have the same dimension.
func WindowFromOffsets(offsets ...ndim.Position) Window {
	out := make([]ndim.Position, len(offsets))
	dim := 0
	for i, p := range offsets {
		out[i] = p.Clone()
		dim = p.Dim()
	}
	return Window{offsets: out, dim: dim}
}

// Len returns the number of offsets.
func (w Window) Len() int { return len(w.offsets) }

// Dim returns the number of axes.
func (w Window) Dim() int { return w.dim }

// Offset returns the i-th offset. The returned position must not be
// modified.
func (w Window) Offset(i int) ndim.Position { return w.offsets[i] }

// Offsets returns a copy of the ordered offset sequence.
func (w Window) Offsets() []ndim.Position {
	out := make([]ndim.Position, len(w.offsets))
	for i, p := range w.offsets {
		out[i] = p.Clone()
	}
	return out
}

// Bounds returns the tight bounding box of the offsets. An empty window
// yields a degenerate box.
func (w Window) Bounds() ndim.Box {
	if len(w.offsets) == 0 {
		return ndim.NewBox(ndim.Ones(w.dim), ndim.Zero(w.dim))
	}
	front := w.offsets[0].Clone()
	back := w.offsets[0].Clone()
	for _, p := range w.offsets[1:] {
		for a, v := range p {
			front[a] = min(front[a], v)
			back[a] = max(back[a], v)
		}
	}
	return ndim.Box{Front: front, Back: back}
}

// Negated returns the window with every offset negated, order preserved.
// It is the window of the convolution equivalent to a correlation with w.
func (w Window) Negated() Window {
	out := make([]ndim.Position, len(w.offsets))
	for i, p := range w.offsets {
		out[i] = p.Negated()
	}
	return Window{offsets: out, dim: w.dim}
}
