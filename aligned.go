package ndim

import "unsafe"

// DefaultAlignment is the byte boundary guaranteed by NewAligned when no
// explicit alignment is requested. 16 bytes is sufficient for 128-bit SIMD
// loads.
const DefaultAlignment = 16

// NewAligned creates an owning, zero-initialized raster whose buffer address
// is guaranteed to be a multiple of align bytes. For align <= 0,
// DefaultAlignment is used. Alignment must be a power of two.
//
// NewAligned always allocates a conforming buffer and never fails: the
// allocation is padded and the buffer starts at the first aligned element.
func NewAligned[T Value](shape Position, align int) *Raster[T] {
	as := uintptr(align)
	if align <= 0 {
		as = DefaultAlignment
	}
	size := Size(shape)
	var zero T
	es := unsafe.Sizeof(zero)

	// Over-allocate by one alignment's worth of elements, then slice at
	// the first aligned address. Go allocations are already aligned to the
	// element size, so the aligned address falls on an element boundary.
	pad := int((as + es - 1) / es)
	raw := make([]T, size+pad)
	off := 0
	if addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw))); addr%as != 0 {
		off = int((as - addr%as) / es)
	}
	r := newRaster(shape, raw[off:off+size:off+size], true, as)
	return r
}

// AdoptAligned creates a raster borrowing a caller-supplied buffer that is
// required to be aligned to align bytes. If the buffer's address already
// satisfies the alignment (always true for align <= 1), the raster borrows
// it without copying and Owns reports false. Otherwise an AlignmentError
// naming the unmet boundary is returned: a buffer that was explicitly
// supplied is never silently reallocated or copied, as that would break the
// caller's memory-sharing intent.
//
// A ShapeError is returned if len(data) does not match the shape's size.
func AdoptAligned[T Value](shape Position, data []T, align int) (*Raster[T], error) {
	if len(data) != Size(shape) {
		return nil, &ShapeError{Shape: shape.Clone(), Len: len(data)}
	}
	as := uintptr(align)
	if align <= 1 {
		as = 1
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	if as > 1 && addr%as != 0 {
		return nil, &AlignmentError{Addr: addr, Align: as}
	}
	return newRaster(shape, data, false, as), nil
}

// Alignment returns the byte boundary the raster's buffer is guaranteed to
// satisfy: the requested alignment for aligned rasters, 1 otherwise.
func (r *Raster[T]) Alignment() int { return int(r.align) }

// Addr returns the address of the raster's buffer. Rasters of size 0 return
// the slice data pointer, which may be zero.
func (r *Raster[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(r.data)))
}
