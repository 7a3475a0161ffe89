// Package filter implements sliding-window operations over ndim rasters.
//
// A Window is an ordered set of relative offsets (a structuring element); a
// Kernel pairs a window with per-offset weights. A Filter combines a window
// with a reduction, such as a weighted sum (correlation, convolution), an
// order statistic (erosion, dilation, median) or any custom statistic, and
// maps an input source to an output raster over the same domain.
//
// Filters chain into lazy pipelines with Compose; independent per-axis
// filters (CorrelationAlong, ConvolutionAlong) compose in any order and are
// equivalent to the full tensor-product kernel, at a fraction of its cost.
//
// If a filter's window reaches outside the input domain, the input must be
// boundary-safe: wrap the raster with ndim.Constant or ndim.Nearest.
package filter
