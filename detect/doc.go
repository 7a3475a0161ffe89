// Package detect flags cosmic-ray hits in 2D float64 rasters.
//
// The pipeline is adaptive Laplacian thresholding refined by a matched
// quotient statistic. The input is convolved with a 3x3 Laplacian kernel
// and the background of the response map is assumed Laplace-distributed,
// which turns a target false-alarm probability into a threshold. Pixels
// above the threshold whose neighborhood is too dissimilar from the
// instrument PSF (point spread function, the footprint of a true point
// source) are flagged. Segment then grows the flagged mask into the
// fainter tails of each hit.
//
// All stages are compositions of the filter package primitives under
// nearest boundary conditions.
package detect
