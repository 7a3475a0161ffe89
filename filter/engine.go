package filter

import (
	"github.com/gogpu/ndim"
	"github.com/gogpu/ndim/internal/parallel"
)

// Apply evaluates the filter over the input's finite domain and returns a
// fresh output raster of the same shape. For every output position p the
// neighborhood {src.At(p + offset)} is gathered in window order and
// reduced.
//
// Positions whose whole window lies inside the domain are swept through a
// fast path of precomputed linear offsets when the input is a raster or an
// extrapolation view; only border positions go through the boundary policy.
// In-place filtering is not possible: the output is always a new raster.
func (f *Filter[T]) Apply(src ndim.Source[T]) *ndim.Raster[T] {
	return f.apply(src, 1)
}

// ApplyParallel is Apply with the output range split across worker
// goroutines. Every output slot is written exactly once, so the result is
// identical to the serial one. workers < 1 means GOMAXPROCS.
func (f *Filter[T]) ApplyParallel(src ndim.Source[T], workers int) *ndim.Raster[T] {
	return f.apply(src, workers)
}

func (f *Filter[T]) apply(src ndim.Source[T], workers int) *ndim.Raster[T] {
	domain := src.Domain()
	out := ndim.New[T](domain.Shape())
	n := out.Size()
	if n == 0 || f.window.Len() == 0 {
		return out
	}

	// Underlying raster for the interior fast path, when there is one.
	var raster *ndim.Raster[T]
	switch s := src.(type) {
	case *ndim.Raster[T]:
		raster = s
	case *ndim.Extend[T]:
		raster = s.Raster()
	}

	// Interior: the positions whose translated window stays in the domain.
	interior := domain.Shrink(f.window.Bounds())

	var linear []int
	if raster != nil {
		shape := domain.Shape()
		linear = make([]int, f.window.Len())
		for i, off := range f.window.offsets {
			linear[i] = ndim.LinearIndex(shape, off)
		}
	}

	ndim.Logger().Debug("filter apply",
		"window", f.window.Len(), "size", n, "workers", parallel.Workers(workers))

	parallel.For(workers, n, func(start, end int) {
		f.evalRange(src, raster, domain, interior, linear, out, start, end)
	})
	return out
}

// evalRange evaluates output slots [start, end) in row-major order using
// goroutine-local scratch buffers.
func (f *Filter[T]) evalRange(
	src ndim.Source[T], raster *ndim.Raster[T],
	domain, interior ndim.Box, linear []int,
	out *ndim.Raster[T], start, end int,
) {
	shape := domain.Shape()
	offsets := f.window.offsets
	neighbors := make([]T, len(offsets))
	q := ndim.Zero(len(shape))
	p := ndim.PositionAt(shape, start)

	var data []T
	if raster != nil {
		data = raster.Data()
	}

	for i := start; i < end; i++ {
		if raster != nil && interior.Contains(p) {
			// Same shape and anchor as the output, so the input linear
			// index of p is i itself.
			for j, off := range linear {
				neighbors[j] = data[i+off]
			}
		} else {
			for j, off := range offsets {
				for a := range q {
					q[a] = p[a] + off[a]
				}
				neighbors[j] = src.At(q)
			}
		}
		out.SetLinear(i, f.reduce(neighbors))
		domain.Next(p)
	}
}
