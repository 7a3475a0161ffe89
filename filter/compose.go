package filter

import "github.com/gogpu/ndim"

// Pipeline is a lazy chain of filters with a shared boundary policy.
// Compose(a, b) means "apply b, then a": stages evaluate right to left,
// like function composition. Nothing is computed until Apply, which
// materializes one raster per stage.
//
// For separable stages, each operating purely along a distinct axis, the
// chain is associative and commutative under constant-zero extrapolation:
// any stage order, and the single filter over the tensor-product kernel,
// produce identical outputs. Non-separable stages compose only in the
// order given.
type Pipeline[T ndim.Value] struct {
	stages []*Filter[T]
	extend func(*ndim.Raster[T]) ndim.Source[T]
}

// Compose chains the given filters into a pipeline evaluating the last
// stage first. The default boundary policy for every stage is constant
// zero; see WithConstant and WithNearest.
func Compose[T ndim.Value](stages ...*Filter[T]) *Pipeline[T] {
	return &Pipeline[T]{
		stages: stages,
		extend: func(r *ndim.Raster[T]) ndim.Source[T] {
			var zero T
			return ndim.Constant(r, zero)
		},
	}
}

// WithConstant selects constant extrapolation with the given value for
// every stage and returns the pipeline.
func (pl *Pipeline[T]) WithConstant(v T) *Pipeline[T] {
	pl.extend = func(r *ndim.Raster[T]) ndim.Source[T] {
		return ndim.Constant(r, v)
	}
	return pl
}

// WithNearest selects nearest-neighbor extrapolation for every stage and
// returns the pipeline.
func (pl *Pipeline[T]) WithNearest() *Pipeline[T] {
	pl.extend = func(r *ndim.Raster[T]) ndim.Source[T] {
		return ndim.Nearest(r)
	}
	return pl
}

// Stages returns the filters in composition order (leftmost applied last).
func (pl *Pipeline[T]) Stages() []*Filter[T] {
	out := make([]*Filter[T], len(pl.stages))
	copy(out, pl.stages)
	return out
}

// Apply evaluates the pipeline on r, rightmost stage first. The input is
// never modified; an empty pipeline returns a copy.
func (pl *Pipeline[T]) Apply(r *ndim.Raster[T]) *ndim.Raster[T] {
	return pl.apply(r, 1)
}

// ApplyParallel is Apply with each stage's sweep parallelized.
func (pl *Pipeline[T]) ApplyParallel(r *ndim.Raster[T], workers int) *ndim.Raster[T] {
	return pl.apply(r, workers)
}

func (pl *Pipeline[T]) apply(r *ndim.Raster[T], workers int) *ndim.Raster[T] {
	if len(pl.stages) == 0 {
		return r.Clone()
	}
	cur := r
	for i := len(pl.stages) - 1; i >= 0; i-- {
		cur = pl.stages[i].apply(pl.extend(cur), workers)
	}
	return cur
}

// CorrelationAlong returns the 1-D correlation filter with the given
// weights along one axis of a dim-dimensional input, centered on the origin
// (rounded down for even lengths).
func CorrelationAlong[T ndim.Value](axis, dim int, weights []T) *Filter[T] {
	k, err := NewKernel(LineWindow(axis, dim, len(weights)), weights)
	if err != nil {
		panic(err) // window length is len(weights) by construction
	}
	return Correlation(k)
}

// ConvolutionAlong is CorrelationAlong with the kernel flipped.
func ConvolutionAlong[T ndim.Value](axis, dim int, weights []T) *Filter[T] {
	k, err := NewKernel(LineWindow(axis, dim, len(weights)), weights)
	if err != nil {
		panic(err)
	}
	return Convolution(k)
}
