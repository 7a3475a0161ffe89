package imageio

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/tiff"

	"github.com/gogpu/ndim"
)

// Writer receives intermediate rasters from a processing pipeline.
//
// Mode 'a' appends: successive calls produce successive frames. Any
// other mode overwrites the destination.
type Writer interface {
	WriteRaster(r *ndim.Raster[float64], mode byte) error
}

// Format selects the on-disk encoding of a FileWriter.
type Format int

const (
	// FormatPNG quantizes to 8-bit grayscale PNG.
	FormatPNG Format = iota
	// FormatTIFF quantizes to 16-bit grayscale TIFF (deflate).
	FormatTIFF
)

// FileWriter writes 2D rasters to image files.
//
// In append mode each call writes a separate numbered file: for a path
// "out/diag.png" the frames are "out/diag.0000.png", "out/diag.0001.png"
// and so on. In overwrite mode the path is used as given.
type FileWriter struct {
	path   string
	format Format

	mu    sync.Mutex
	frame int
}

// NewFileWriter creates a writer for the given path. The format is
// inferred from the extension: .png, .tif or .tiff.
func NewFileWriter(path string) (*FileWriter, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = FormatPNG
	case ".tif", ".tiff":
		format = FormatTIFF
	default:
		return nil, fmt.Errorf("imageio: unsupported extension %q", filepath.Ext(path))
	}
	return &FileWriter{path: path, format: format}, nil
}

// WriteRaster encodes a 2D raster to disk. Mode 'a' writes the next
// numbered frame; any other mode overwrites the base path.
func (w *FileWriter) WriteRaster(r *ndim.Raster[float64], mode byte) error {
	if r.Dim() != 2 {
		return fmt.Errorf("imageio: want a 2D raster, got %d axes", r.Dim())
	}

	path := w.path
	if mode == 'a' {
		w.mu.Lock()
		n := w.frame
		w.frame++
		w.mu.Unlock()
		ext := filepath.Ext(w.path)
		path = fmt.Sprintf("%s.%04d%s", strings.TrimSuffix(w.path, ext), n, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := grayImage(r, w.format)
	switch w.format {
	case FormatTIFF:
		opts := &tiff.Options{Compression: tiff.Deflate}
		if err := tiff.Encode(f, img, opts); err != nil {
			return err
		}
	default:
		if err := png.Encode(f, img); err != nil {
			return err
		}
	}
	return f.Close()
}

// grayImage quantizes a 2D raster to a grayscale image, mapping the
// finite [min, max] range onto the full pixel range. Non-finite samples
// render as black.
func grayImage(r *ndim.Raster[float64], format Format) image.Image {
	shape := r.Shape()
	width, height := shape[0], shape[1]

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < r.Size(); i++ {
		v := r.AtLinear(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	scale := 0.0
	if hi > lo {
		scale = 1 / (hi - lo)
	}

	level := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return (v - lo) * scale
	}

	if format == FormatTIFF {
		img := image.NewGray16(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			row := y * img.Stride
			for x := 0; x < width; x++ {
				g := uint16(level(r.At(ndim.Position{x, y}))*65535 + 0.5)
				img.Pix[row+2*x] = uint8(g >> 8)
				img.Pix[row+2*x+1] = uint8(g)
			}
		}
		return img
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := y * img.Stride
		for x := 0; x < width; x++ {
			img.Pix[row+x] = uint8(level(r.At(ndim.Position{x, y}))*255 + 0.5)
		}
	}
	return img
}
