// Package ndim provides sliding-window processing of N-dimensional dense
// arrays ("rasters").
//
// # Overview
//
// ndim is a pure Go numerical library for evaluating neighborhood
// operations over dense N-dimensional data: correlation and convolution
// with weighted kernels, order-statistic morphology (erosion, dilation,
// median), sub-pixel interpolation, and out-of-domain extrapolation.
// Per-axis filters compose into pipelines, so separable kernels never need
// to be materialized as a full N-dimensional window.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/ndim"
//		"github.com/gogpu/ndim/filter"
//	)
//
//	// A 2D float raster.
//	img := ndim.New[float64](ndim.Position{512, 512})
//
//	// Erode with a 3x3 box under zero boundary conditions.
//	eroded := filter.Erosion[float64](filter.BoxWindow(1, 2)).
//		Apply(ndim.Constant(img, 0))
//
//	// Separable Sobel gradient along x.
//	gx := filter.SobelGradient[float64](0, 1, 2, 1).Apply(img)
//
// # Architecture
//
// The library is organized into:
//   - ndim (this package): coordinates, boxes, strided grids, raster
//     storage (owning, borrowing, aligned), boundary extrapolation and
//     sub-pixel interpolation views
//   - filter: structuring elements, kernels, reductions, the
//     sliding-window engine and the composition algebra
//   - imageio: an image-file sink for diagnostic raster dumps
//   - detect: a cosmic-ray detection pipeline built from the above
//
// # Coordinate System
//
// Positions are signed integer tuples; axis 0 is the innermost axis and
// varies fastest in row-major iteration. Boxes have inclusive bounds.
// Raster domains are anchored at the zero position.
//
// # Boundary Safety
//
// Reading a neighborhood that extends outside a raster's domain is only
// defined through an extrapolation view (Constant or Nearest). Pairing a
// filter whose window exceeds the raster interior with a bare raster is a
// programming error; compose with a view instead.
package ndim

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
