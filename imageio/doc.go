// Package imageio writes rasters to common image files for inspection.
//
// It is a diagnostic sink, not a science-grade serialization layer: data
// is min/max normalized and quantized to 8-bit PNG or 16-bit grayscale
// TIFF. Callers that hold a Writer typically treat failures as
// non-fatal and log them.
package imageio
