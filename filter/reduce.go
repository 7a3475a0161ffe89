package filter

import (
	"slices"

	"github.com/gogpu/ndim"
)

// Filter pairs a window with a reduction over the gathered neighborhood.
// Filters are immutable and stateless beyond their window and reduction;
// the same filter may be applied to any number of inputs, concurrently.
//
// The reduction receives the neighborhood values in window order. It must
// be safe for concurrent calls (pure functions and functions that only
// read captured state are; see New).
type Filter[T ndim.Value] struct {
	window Window
	reduce func(neighbors []T) T
}

// New returns a filter with a custom reduction, e.g. a normalized
// cross-correlation or ratio statistic. The reduction may capture kernel
// state prepared at construction time; it must not retain the neighbors
// slice, which is reused between calls.
func New[T ndim.Value](w Window, reduce func(neighbors []T) T) *Filter[T] {
	return &Filter[T]{window: w, reduce: reduce}
}

// Window returns the filter's structuring element.
func (f *Filter[T]) Window() Window { return f.window }

// Correlation returns the weighted-sum filter Σ wᵢ·nᵢ over the kernel's
// window.
func Correlation[T ndim.Value](k *Kernel[T]) *Filter[T] {
	weights := k.Weights()
	return New(k.window, func(neighbors []T) T {
		var sum T
		for i, w := range weights {
			sum += w * neighbors[i]
		}
		return sum
	})
}

// Convolution returns the correlation with the kernel flipped: the window
// offsets are negated while the weight pairing is preserved, so the output
// at p is Σ wᵢ·in(p - offsetᵢ).
func Convolution[T ndim.Value](k *Kernel[T]) *Filter[T] {
	weights := k.Weights()
	return New(k.window.Negated(), func(neighbors []T) T {
		var sum T
		for i, w := range weights {
			sum += w * neighbors[i]
		}
		return sum
	})
}

// Erosion returns the min filter over the window. The structuring element
// supplies shape only; there are no weights.
func Erosion[T ndim.Value](w Window) *Filter[T] {
	return New(w, func(neighbors []T) T {
		out := neighbors[0]
		for _, v := range neighbors[1:] {
			if v < out {
				out = v
			}
		}
		return out
	})
}

// Dilation returns the max filter over the window.
func Dilation[T ndim.Value](w Window) *Filter[T] {
	return New(w, func(neighbors []T) T {
		out := neighbors[0]
		for _, v := range neighbors[1:] {
			if v > out {
				out = v
			}
		}
		return out
	})
}

// Median returns the median filter over the window. For even-sized windows
// the two middle order statistics are averaged (truncating for integer
// element types). Arithmetic happens in T, so averaging two values near
// the maximum of a small integer type overflows; widen the element type
// first when that matters.
func Median[T ndim.Value](w Window) *Filter[T] {
	return New(w, func(neighbors []T) T {
		v := make([]T, len(neighbors))
		copy(v, neighbors)
		slices.Sort(v)
		m := len(v) / 2
		if len(v)%2 == 1 {
			return v[m]
		}
		return (v[m-1] + v[m]) / 2
	})
}

// Mean returns the average filter over the window (truncating for integer
// element types). The running sum is accumulated in T and can overflow for
// small integer types; widen the element type first when that matters.
func Mean[T ndim.Value](w Window) *Filter[T] {
	n := T(w.Len())
	return New(w, func(neighbors []T) T {
		var sum T
		for _, v := range neighbors {
			sum += v
		}
		return sum / n
	})
}
