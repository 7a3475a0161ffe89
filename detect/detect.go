package detect

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/ndim"
	"github.com/gogpu/ndim/filter"
	"github.com/gogpu/ndim/imageio"
)

// Options configures the detection pipeline.
type Options struct {
	// PFA is the target false-alarm probability of the Laplacian
	// threshold.
	PFA float64

	// QuotientThreshold rejects PSF-like pixels: a detection requires
	// the dilated quotient statistic to stay below it.
	QuotientThreshold float64

	// DilationRadius of the quotient map. Zero or negative selects
	// sqrt(psf size)/4.
	DilationRadius int

	// QuotientWindow overrides the neighborhood of the quotient
	// statistic. Its length must equal the PSF size. Empty selects the
	// PSF-shaped box centered on its middle pixel.
	QuotientWindow filter.Window

	// Diagnostics, when non-nil, receives the intermediate Laplacian
	// and quotient maps as appended frames. Write failures are logged
	// and otherwise ignored.
	Diagnostics imageio.Writer
}

// DefaultOptions returns the standard pipeline tuning.
func DefaultOptions() Options {
	return Options{
		PFA:               0.01,
		QuotientThreshold: 0.5,
	}
}

// laplacianWeights shape a high-pass response that peaks on isolated
// bright pixels while summing to zero on flat backgrounds.
var laplacianWeights = []float64{
	-1. / 6, -2. / 3, -1. / 6,
	-2. / 3, 10. / 3, -2. / 3,
	-1. / 6, -2. / 3, -1. / 6,
}

// Laplacian convolves a 2D raster with the detection Laplacian kernel
// under nearest boundary conditions.
func Laplacian(in *ndim.Raster[float64]) *ndim.Raster[float64] {
	k, err := filter.NewKernel(filter.BoxWindow(1, 2), laplacianWeights)
	if err != nil {
		panic(err)
	}
	return filter.Convolution(k).Apply(ndim.Nearest(in))
}

// NoiseThreshold estimates the detection threshold of a response map for
// a target false-alarm probability, assuming the background response is
// Laplace-distributed: t = -mean|r| * ln(2*pfa). Non-finite samples are
// ignored.
func NoiseThreshold(response *ndim.Raster[float64], pfa float64) float64 {
	abs := make([]float64, 0, response.Size())
	for i := 0; i < response.Size(); i++ {
		v := response.AtLinear(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		abs = append(abs, math.Abs(v))
	}
	if len(abs) == 0 {
		return math.Inf(1)
	}
	return -stat.Mean(abs, nil) * math.Log(2*pfa)
}

// Quotient computes the normalized quotient statistic of every pixel
// against the PSF: the minimum neighbor/weight ratio over the PSF-shaped
// window, scaled by sqrt(size/sum(ratio^2)). A pixel whose neighborhood
// is an exact multiple of the PSF scores 1; sharper-than-PSF profiles
// score lower. Ties keep the first minimum in window order.
func Quotient(in, psf *ndim.Raster[float64]) *ndim.Raster[float64] {
	k := filter.CenteredKernel(psf)
	return quotient(k.Window(), k.Weights()).Apply(ndim.Nearest(in))
}

func quotient(w filter.Window, weights []float64) *filter.Filter[float64] {
	return filter.New(w, func(neighbors []float64) float64 {
		out := math.Inf(1)
		norm2 := 0.0
		for i, n := range neighbors {
			q := n / weights[i]
			norm2 += q * q
			if q < out {
				out = q
			}
		}
		return out * math.Sqrt(float64(len(neighbors))/norm2)
	})
}

// Match computes the Pearson correlation coefficient of every pixel's
// neighborhood against the PSF: +1 for an affine match, 0 for no linear
// relation. The PSF is mean-centered once at construction.
func Match(in, psf *ndim.Raster[float64]) *ndim.Raster[float64] {
	k := filter.CenteredKernel(psf)
	weights := k.Weights()
	floats.AddConst(-stat.Mean(weights, nil), weights)
	wsum2 := floats.Dot(weights, weights)

	f := filter.New(k.Window(), func(neighbors []float64) float64 {
		m := 0.0
		for _, n := range neighbors {
			m += n
		}
		m /= float64(len(neighbors))
		var dot, sum2 float64
		for i, n := range neighbors {
			c := n - m
			dot += weights[i] * c
			sum2 += c * c
		}
		return dot / math.Sqrt(wsum2*sum2)
	})
	return f.Apply(ndim.Nearest(in))
}

// Dilate replaces every pixel with the maximum over the centered box of
// the given radius, under nearest boundary conditions.
func Dilate(in *ndim.Raster[float64], radius int) *ndim.Raster[float64] {
	return filter.Dilation[float64](filter.BoxWindow(radius, 2)).Apply(ndim.Nearest(in))
}

// Blur replaces every pixel with the mean over the centered box of the
// given radius, under nearest boundary conditions.
func Blur(in *ndim.Raster[float64], radius int) *ndim.Raster[float64] {
	return filter.Mean[float64](filter.BoxWindow(radius, 2)).Apply(ndim.Nearest(in))
}

// Cosmics detects cosmic-ray hits in a 2D raster. A pixel is flagged
// (value 1 in the returned mask) when its Laplacian response exceeds the
// noise threshold derived from opts.PFA and its dilated quotient
// statistic against the PSF stays below opts.QuotientThreshold.
func Cosmics(in, psf *ndim.Raster[float64], opts Options) *ndim.Raster[uint8] {
	log := ndim.Logger()

	lap := Laplacian(in)
	writeDiagnostic(opts.Diagnostics, lap)
	tl := NoiseThreshold(lap, opts.PFA)

	radius := opts.DilationRadius
	if radius <= 0 {
		radius = int(math.Sqrt(float64(psf.Size())) / 4)
	}
	log.Debug("cosmic detection thresholds",
		"laplacian", tl, "quotient", opts.QuotientThreshold, "radius", radius)

	var qf *filter.Filter[float64]
	if opts.QuotientWindow.Len() > 0 {
		k := filter.CenteredKernel(psf)
		if opts.QuotientWindow.Len() != k.Len() {
			panic("detect: quotient window length does not match the PSF size")
		}
		qf = quotient(opts.QuotientWindow, k.Weights())
	} else {
		k := filter.CenteredKernel(psf)
		qf = quotient(k.Window(), k.Weights())
	}
	quot := Dilate(qf.Apply(ndim.Nearest(in)), radius)
	writeDiagnostic(opts.Diagnostics, quot)

	mask, err := ndim.Zip(lap, quot, func(l, q float64) uint8 {
		if l > tl && q < opts.QuotientThreshold {
			return 1
		}
		return 0
	})
	if err != nil {
		panic(err) // lap and quot share the input shape
	}
	return mask
}

func writeDiagnostic(w imageio.Writer, r *ndim.Raster[float64]) {
	if w == nil {
		return
	}
	if err := w.WriteRaster(r, 'a'); err != nil {
		ndim.Logger().Warn("diagnostic write failed", "err", err)
	}
}
