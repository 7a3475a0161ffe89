package ndim

// Value is the set of element types a raster can hold: the fixed-size
// integers and floats. Every Value type is totally ordered, so order
// statistics (min, max, median) are defined for all rasters.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Source is a read-only view of raster data over a finite domain. Rasters,
// extrapolation views and anything else with positionwise reads satisfy it.
//
// A bare *Raster is a Source whose reads are only defined inside its
// domain; pairing it with a window that reaches outside the domain is a
// programming error. Wrap it with Constant or Nearest to make every read
// well defined.
type Source[T Value] interface {
	// Domain returns the finite domain of the underlying data.
	Domain() Box

	// At returns the value at p.
	At(p Position) T
}

// Raster is a dense N-dimensional array over a box anchored at the zero
// position, stored row-major in a flat buffer (axis 0 varies fastest).
//
// A raster either owns its buffer or borrows a caller-supplied one; see the
// constructors. Mutation is direct indexed write, there is no copy-on-write.
type Raster[T Value] struct {
	shape  Position
	stride []int
	data   []T
	owns   bool
	align  uintptr
}

// New creates an owning, zero-initialized raster of the given shape.
func New[T Value](shape Position) *Raster[T] {
	return newRaster(shape, make([]T, Size(shape)), true, 1)
}

// FromSlice creates an owning raster of the given shape initialized with a
// copy of data. It returns a ShapeError if len(data) does not match the
// shape's size.
func FromSlice[T Value](shape Position, data []T) (*Raster[T], error) {
	if len(data) != Size(shape) {
		return nil, &ShapeError{Shape: shape.Clone(), Len: len(data)}
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return newRaster(shape, buf, true, 1), nil
}

// MustFromSlice is FromSlice for statically known literals; it panics on
// shape mismatch.
func MustFromSlice[T Value](shape Position, data []T) *Raster[T] {
	r, err := FromSlice(shape, data)
	if err != nil {
		panic(err)
	}
	return r
}

// Adopt creates a raster over data without copying; the raster takes
// ownership of the slice and the caller must not use it afterwards. It
// returns a ShapeError if len(data) does not match the shape's size.
func Adopt[T Value](shape Position, data []T) (*Raster[T], error) {
	if len(data) != Size(shape) {
		return nil, &ShapeError{Shape: shape.Clone(), Len: len(data)}
	}
	return newRaster(shape, data, true, 1), nil
}

func newRaster[T Value](shape Position, data []T, owns bool, align uintptr) *Raster[T] {
	stride := make([]int, len(shape))
	s := 1
	for i, v := range shape {
		stride[i] = s
		s *= v
	}
	return &Raster[T]{shape: shape.Clone(), stride: stride, data: data, owns: owns, align: align}
}

// Shape returns the per-axis extents.
func (r *Raster[T]) Shape() Position { return r.shape.Clone() }

// Dim returns the number of axes.
func (r *Raster[T]) Dim() int { return len(r.shape) }

// Size returns the number of elements.
func (r *Raster[T]) Size() int { return len(r.data) }

// Domain returns the raster's domain: the box from zero to shape-1.
func (r *Raster[T]) Domain() Box {
	back := make(Position, len(r.shape))
	for i, v := range r.shape {
		back[i] = v - 1
	}
	return Box{Front: Zero(len(r.shape)), Back: back}
}

// Owns reports whether the raster owns its buffer. It is false only for
// rasters borrowing a caller-supplied aligned buffer (see AdoptAligned).
func (r *Raster[T]) Owns() bool { return r.owns }

// Index returns the row-major linear offset of p, derived from the raster's
// own shape. The result is meaningful only for p inside the domain.
func (r *Raster[T]) Index(p Position) int {
	i := 0
	for a, s := range r.stride {
		i += p[a] * s
	}
	return i
}

// At returns the value at p. Reads are defined only inside the domain.
func (r *Raster[T]) At(p Position) T {
	return r.data[r.Index(p)]
}

// Set writes v at p.
func (r *Raster[T]) Set(p Position, v T) {
	r.data[r.Index(p)] = v
}

// AtLinear returns the value at row-major offset i.
func (r *Raster[T]) AtLinear(i int) T { return r.data[i] }

// SetLinear writes v at row-major offset i.
func (r *Raster[T]) SetLinear(i int, v T) { r.data[i] = v }

// Data exposes the raster's buffer. The slice aliases the raster's storage;
// writes through it are visible to the raster.
func (r *Raster[T]) Data() []T { return r.data }

// Contains reports whether p lies inside the raster domain.
func (r *Raster[T]) Contains(p Position) bool {
	for i, v := range p {
		if v < 0 || v >= r.shape[i] {
			return false
		}
	}
	return true
}

// Fill sets every element to v.
func (r *Raster[T]) Fill(v T) {
	for i := range r.data {
		r.data[i] = v
	}
}

// Clone returns an owning deep copy of the raster.
func (r *Raster[T]) Clone() *Raster[T] {
	buf := make([]T, len(r.data))
	copy(buf, r.data)
	return newRaster(r.shape, buf, true, 1)
}

// Map returns a new raster of the same shape with fn applied elementwise.
func Map[T, U Value](r *Raster[T], fn func(T) U) *Raster[U] {
	out := New[U](r.shape)
	for i, v := range r.data {
		out.data[i] = fn(v)
	}
	return out
}

// Zip returns a new raster of the same shape as a and b with fn applied to
// corresponding elements. A MismatchError is returned if the shapes differ.
func Zip[T, U, V Value](a *Raster[T], b *Raster[U], fn func(T, U) V) (*Raster[V], error) {
	if !a.shape.Equal(b.shape) {
		return nil, &MismatchError{A: a.shape.Clone(), B: b.shape.Clone()}
	}
	out := New[V](a.shape)
	for i := range a.data {
		out.data[i] = fn(a.data[i], b.data[i])
	}
	return out, nil
}
