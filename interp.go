package ndim

import "math"

// InterpMethod selects how a real-valued coordinate is reconstructed from
// the neighboring integer-coordinate samples. The method set is closed.
type InterpMethod int

const (
	// NearestPoint rounds each axis coordinate to the nearest integer.
	NearestPoint InterpMethod = iota

	// Linear interpolates multilinearly between the 2^dim integer corners
	// bracketing the query point.
	Linear

	// Cubic applies per-axis cubic convolution over the 4 integer samples
	// bracketing the point along each axis. It reproduces the source
	// exactly at integer coordinates.
	Cubic
)

// Interp is a read-only view answering real-coordinate reads over a source
// by interpolation. Linear and Cubic read bracketing samples up to 1
// (respectively 2) positions outside the query point's cell: wrap the
// source with Constant or Nearest when queries come close to the domain
// boundary, so that out-of-domain bracket samples are resolved by the
// extrapolation policy before the interpolation weights are applied.
//
// The view borrows the source and owns nothing.
type Interp[T Value] struct {
	src    Source[T]
	method InterpMethod
}

// NewInterp returns an interpolated view of src with the given method.
func NewInterp[T Value](src Source[T], method InterpMethod) *Interp[T] {
	return &Interp[T]{src: src, method: method}
}

// Source returns the wrapped source.
func (ip *Interp[T]) Source() Source[T] { return ip.src }

// Domain returns the wrapped source's domain.
func (ip *Interp[T]) Domain() Box { return ip.src.Domain() }

// At forwards an integer-coordinate read to the source.
func (ip *Interp[T]) At(p Position) T { return ip.src.At(p) }

// AtReal returns the reconstructed value at a real-valued coordinate.
// The weights are computed in float64 and the result converted back to the
// element type.
func (ip *Interp[T]) AtReal(pos []float64) T {
	idx := make(Position, len(pos))
	switch ip.method {
	case Linear:
		return T(ip.linear(pos, idx, len(pos)-1))
	case Cubic:
		return T(ip.cubic(pos, idx, len(pos)-1))
	default:
		for i, v := range pos {
			idx[i] = int(math.Floor(v + 0.5))
		}
		return ip.src.At(idx)
	}
}

// linear evaluates multilinear interpolation along axes 0..axis, with the
// integer coordinates of higher axes already fixed in idx.
func (ip *Interp[T]) linear(pos []float64, idx Position, axis int) float64 {
	f := int(math.Floor(pos[axis]))
	d := pos[axis] - float64(f)
	var p, n float64
	if axis == 0 {
		idx[0] = f
		p = float64(ip.src.At(idx))
		idx[0] = f + 1
		n = float64(ip.src.At(idx))
	} else {
		idx[axis] = f
		p = ip.linear(pos, idx, axis-1)
		idx[axis] = f + 1
		n = ip.linear(pos, idx, axis-1)
	}
	return p + d*(n-p)
}

// cubic evaluates per-axis cubic convolution (Catmull-Rom weights) along
// axes 0..axis.
func (ip *Interp[T]) cubic(pos []float64, idx Position, axis int) float64 {
	f := int(math.Floor(pos[axis]))
	d := pos[axis] - float64(f)
	var pp, p, n, nn float64
	if axis == 0 {
		idx[0] = f - 1
		pp = float64(ip.src.At(idx))
		idx[0] = f
		p = float64(ip.src.At(idx))
		idx[0] = f + 1
		n = float64(ip.src.At(idx))
		idx[0] = f + 2
		nn = float64(ip.src.At(idx))
	} else {
		idx[axis] = f - 1
		pp = ip.cubic(pos, idx, axis-1)
		idx[axis] = f
		p = ip.cubic(pos, idx, axis-1)
		idx[axis] = f + 1
		n = ip.cubic(pos, idx, axis-1)
		idx[axis] = f + 2
		nn = ip.cubic(pos, idx, axis-1)
	}
	return p + 0.5*(d*(-pp+n)+d*d*(2*pp-5*p+4*n-nn)+d*d*d*(-pp+3*p-3*n+nn))
}
