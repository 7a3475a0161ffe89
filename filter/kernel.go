package filter

import "github.com/gogpu/ndim"

// Kernel pairs a window with one weight per offset. Kernels are immutable
// once built; statistics that need pre-transformed weights (mean-centering,
// cached norms) apply Transform exactly once at construction time.
type Kernel[T ndim.Value] struct {
	window  Window
	weights []T
}

// NewKernel returns a kernel over the given window and weights. The weights
// are copied; a ShapeError is returned when their count does not match the
// window length.
func NewKernel[T ndim.Value](w Window, weights []T) (*Kernel[T], error) {
	if len(weights) != w.Len() {
		return nil, &ndim.ShapeError{Shape: ndim.Position{w.Len()}, Len: len(weights)}
	}
	buf := make([]T, len(weights))
	copy(buf, weights)
	return &Kernel[T]{window: w, weights: buf}, nil
}

// KernelFromRaster builds a kernel whose window is the raster's domain
// translated so that origin becomes the zero offset, with the raster values
// as weights in row-major order.
func KernelFromRaster[T ndim.Value](r *ndim.Raster[T], origin ndim.Position) *Kernel[T] {
	w := WindowFromBox(r.Domain().Translated(origin.Negated()))
	k, err := NewKernel(w, r.Data())
	if err != nil {
		// The window is derived from the raster's own domain.
		panic(err)
	}
	return k
}

// CenteredKernel is KernelFromRaster with the origin at (shape-1)/2,
// rounded down on even lengths.
func CenteredKernel[T ndim.Value](r *ndim.Raster[T]) *Kernel[T] {
	shape := r.Shape()
	origin := make(ndim.Position, len(shape))
	for i, v := range shape {
		origin[i] = (v - 1) / 2
	}
	return KernelFromRaster(r, origin)
}

// Window returns the kernel's window.
func (k *Kernel[T]) Window() Window { return k.window }

// Len returns the number of weighted offsets.
func (k *Kernel[T]) Len() int { return len(k.weights) }

// Weights returns a copy of the weight sequence, in window order.
func (k *Kernel[T]) Weights() []T {
	out := make([]T, len(k.weights))
	copy(out, k.weights)
	return out
}

// Transform applies a one-time in-place transformation to the stored
// weights, e.g. mean-centering for a normalized statistic. It is meant to
// run once, at construction, before the kernel is used; afterwards the
// kernel is immutable.
func (k *Kernel[T]) Transform(fn func(weights []T)) *Kernel[T] {
	fn(k.weights)
	return k
}

// Product returns the tensor-product kernel of a and b: one offset per pair
// (i, j) at a.Offset(i) + b.Offset(j) with weight a_i * b_j. The offsets of
// a vary fastest, so two orthogonal line kernels produce the row-major
// enumeration of their combined box. Kernels of different dimensions are
// aligned by zero-extending the lower-dimensional offsets.
func Product[T ndim.Value](a, b *Kernel[T]) *Kernel[T] {
	dim := max(a.window.dim, b.window.dim)
	offsets := make([]ndim.Position, 0, a.Len()*b.Len())
	weights := make([]T, 0, a.Len()*b.Len())
	for j, q := range b.window.offsets {
		qx := q.Extend(dim, 0)
		for i, p := range a.window.offsets {
			offsets = append(offsets, p.Extend(dim, 0).Plus(qx))
			weights = append(weights, a.weights[i]*b.weights[j])
		}
	}
	return &Kernel[T]{window: Window{offsets: offsets, dim: dim}, weights: weights}
}
