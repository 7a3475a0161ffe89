package ndim

// Extend is a read-only view pairing a raster with a boundary policy. It
// answers reads at any integer position: inside the raster domain the read
// is forwarded unchanged, outside it the policy is applied. The policy set
// is closed: constant ("Dirichlet") or nearest ("Neumann").
//
// The view borrows the raster and owns nothing; it must not outlive it.
type Extend[T Value] struct {
	raster   *Raster[T]
	nearest  bool
	constant T
}

// Constant returns a view of r that yields v for every out-of-domain read.
func Constant[T Value](r *Raster[T], v T) *Extend[T] {
	return &Extend[T]{raster: r, constant: v}
}

// Nearest returns a view of r that resolves an out-of-domain read by
// clamping each axis coordinate into [0, shape[axis]-1].
func Nearest[T Value](r *Raster[T]) *Extend[T] {
	return &Extend[T]{raster: r, nearest: true}
}

// Raster returns the wrapped raster.
func (e *Extend[T]) Raster() *Raster[T] { return e.raster }

// Domain returns the wrapped raster's domain. Reads are nonetheless defined
// everywhere.
func (e *Extend[T]) Domain() Box { return e.raster.Domain() }

// At returns the value at p, resolving out-of-domain positions through the
// boundary policy.
func (e *Extend[T]) At(p Position) T {
	r := e.raster
	i := 0
	for a, v := range p {
		if v < 0 || v >= r.shape[a] {
			return e.outside(p)
		}
		i += v * r.stride[a]
	}
	return r.data[i]
}

// outside is the out-of-domain slow path.
func (e *Extend[T]) outside(p Position) T {
	if !e.nearest {
		return e.constant
	}
	r := e.raster
	i := 0
	for a, v := range p {
		if v < 0 {
			v = 0
		} else if v >= r.shape[a] {
			v = r.shape[a] - 1
		}
		i += v * r.stride[a]
	}
	return r.data[i]
}
