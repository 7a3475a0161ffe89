package ndim

import "fmt"

// Position is an N-dimensional integer coordinate. It addresses a pixel in a
// raster or describes a shape (the per-axis extent of a region).
//
// The dimension of a Position is fixed for its lifetime: elementwise
// operations require operands of equal dimension. Arithmetic methods return
// fresh values and never mutate their receiver, so positions can be shared
// freely.
//
// By convention axis 0 is the innermost (fastest-varying) axis of row-major
// iteration.
type Position []int

// Zero returns the all-zero position of the given dimension.
func Zero(dim int) Position {
	return make(Position, dim)
}

// Ones returns the all-one position of the given dimension.
func Ones(dim int) Position {
	return Full(dim, 1)
}

// MinusOnes returns the all-minus-one position of the given dimension.
// It is the conventional "maximal" placeholder shape.
func MinusOnes(dim int) Position {
	return Full(dim, -1)
}

// Full returns a position of the given dimension with every coordinate set
// to v.
func Full(dim, v int) Position {
	p := make(Position, dim)
	for i := range p {
		p[i] = v
	}
	return p
}

// Dim returns the number of axes.
func (p Position) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Position) Clone() Position {
	q := make(Position, len(p))
	copy(q, p)
	return q
}

// Equal reports whether p and q have the same dimension and coordinates.
func (p Position) Equal(q Position) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Plus returns the elementwise sum p + q.
func (p Position) Plus(q Position) Position {
	out := make(Position, len(p))
	for i := range p {
		out[i] = p[i] + q[i]
	}
	return out
}

// Minus returns the elementwise difference p - q.
func (p Position) Minus(q Position) Position {
	out := make(Position, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}
	return out
}

// Times returns the elementwise product p ⊙ q.
func (p Position) Times(q Position) Position {
	out := make(Position, len(p))
	for i := range p {
		out[i] = p[i] * q[i]
	}
	return out
}

// Scaled returns p with every coordinate multiplied by k.
func (p Position) Scaled(k int) Position {
	out := make(Position, len(p))
	for i := range p {
		out[i] = p[i] * k
	}
	return out
}

// Shifted returns p with k added to every coordinate.
func (p Position) Shifted(k int) Position {
	out := make(Position, len(p))
	for i := range p {
		out[i] = p[i] + k
	}
	return out
}

// Negated returns -p.
func (p Position) Negated() Position {
	return p.Scaled(-1)
}

// Slice returns the first m coordinates of p as a new position.
func (p Position) Slice(m int) Position {
	return p[:m].Clone()
}

// Extend pads p up to dimension n, filling the new trailing axes with fill.
// If n <= p.Dim(), a clone of p is returned.
func (p Position) Extend(n, fill int) Position {
	if n <= len(p) {
		return p.Clone()
	}
	out := Full(n, fill)
	copy(out, p)
	return out
}

// String formats p as "(x, y, ...)".
func (p Position) String() string {
	s := "("
	for i, v := range p {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(v)
	}
	return s + ")"
}

// Stride returns the row-major stride of the given axis for a raster of the
// given shape: the product of the extents of all lower axes.
func Stride(shape Position, axis int) int {
	s := 1
	for i := 0; i < axis; i++ {
		s *= shape[i]
	}
	return s
}

// Size returns the total number of positions covered by a shape, which is 0
// whenever some axis has extent 0 or less.
func Size(shape Position) int {
	s := 1
	for _, v := range shape {
		if v <= 0 {
			return 0
		}
		s *= v
	}
	return s
}

// LinearIndex returns the row-major offset of p in a buffer of the given
// shape. It is the inverse of PositionAt.
func LinearIndex(shape, p Position) int {
	i := 0
	stride := 1
	for a := range shape {
		i += p[a] * stride
		stride *= shape[a]
	}
	return i
}

// PositionAt returns the position at row-major offset i in a buffer of the
// given shape.
func PositionAt(shape Position, i int) Position {
	p := make(Position, len(shape))
	for a := range shape {
		p[a] = i % shape[a]
		i /= shape[a]
	}
	return p
}
