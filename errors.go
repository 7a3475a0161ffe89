package ndim

import "fmt"

// MismatchError reports two rasters whose shapes were required to match
// but do not.
type MismatchError struct {
	A, B Position
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("ndim: shape %v does not match shape %v", e.A, e.B)
}

// ShapeError reports a raster constructed from a data source whose element
// count does not match the declared shape's size.
type ShapeError struct {
	Shape Position // the declared shape
	Len   int      // the actual element count
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("ndim: %d elements do not fit shape %v (size %d)", e.Len, e.Shape, Size(e.Shape))
}

// AlignmentError reports an externally supplied buffer that does not satisfy
// a requested byte alignment. It signals a caller configuration error and is
// never resolved by copying or reallocating the buffer.
type AlignmentError struct {
	Addr  uintptr // the buffer address
	Align uintptr // the unmet byte boundary
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("ndim: address %#x is not %d-byte aligned", e.Addr, e.Align)
}
