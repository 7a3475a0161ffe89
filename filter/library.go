package filter

import (
	"math"

	"github.com/gogpu/ndim"
)

// PrewittGradient returns the Prewitt derivative filter: the convolution
// kernel {sign, 0, -sign} along the derivation axis composed with the
// averaging kernel {1, 1, 1} along the averaging axis. For derivation in
// the increasing-index direction keep sign = 1; sign = -1 yields the exact
// negation.
func PrewittGradient[T ndim.Value](derivation, averaging, dim int, sign T) *Pipeline[T] {
	return Compose(
		ConvolutionAlong(derivation, dim, []T{sign, 0, -sign}),
		ConvolutionAlong(averaging, dim, []T{1, 1, 1}),
	)
}

// SobelGradient is PrewittGradient with averaging kernel {1, 2, 1}.
func SobelGradient[T ndim.Value](derivation, averaging, dim int, sign T) *Pipeline[T] {
	return Compose(
		ConvolutionAlong(derivation, dim, []T{sign, 0, -sign}),
		ConvolutionAlong(averaging, dim, []T{1, 2, 1}),
	)
}

// ScharrGradient is PrewittGradient with averaging kernel {3, 10, 3}.
func ScharrGradient[T ndim.Value](derivation, averaging, dim int, sign T) *Pipeline[T] {
	return Compose(
		ConvolutionAlong(derivation, dim, []T{sign, 0, -sign}),
		ConvolutionAlong(averaging, dim, []T{3, 10, 3}),
	)
}

// Laplacian returns the discrete Laplacian filter over the cross-shaped
// window: weight sign on the two immediate neighbors along every axis and
// -2·sign at the center. In 2D with sign = 1 this is the kernel
// [0 1 0; 1 -2 1; 0 1 0].
func Laplacian[T ndim.Value](dim int, sign T) *Filter[T] {
	w := CrossWindow(dim)
	weights := make([]T, w.Len())
	for i := range weights {
		weights[i] = sign
	}
	weights[dim] = -(2 * sign) // the center offset
	k, err := NewKernel(w, weights)
	if err != nil {
		panic(err)
	}
	return Convolution(k)
}

// GaussianKernel generates a 1D Gaussian kernel for the given radius.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(radius * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}

	sigma := radius
	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float64, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels in normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - halfSize)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}

	if sum > 0 {
		inv := 1 / sum
		for i := range kernel {
			kernel[i] *= inv
		}
	}
	return kernel
}

// BoxKernel generates a 1D box (uniform) kernel for the given radius.
// All values are equal: 1/(2*radius+1).
func BoxKernel(radius int) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}
	size := radius*2 + 1
	kernel := make([]float64, size)
	v := 1.0 / float64(size)
	for i := range kernel {
		kernel[i] = v
	}
	return kernel
}

// GaussianSmoothing returns the separable Gaussian blur over all axes of a
// dim-dimensional input, under nearest boundary conditions.
func GaussianSmoothing(dim int, radius float64) *Pipeline[float64] {
	kernel := GaussianKernel(radius)
	stages := make([]*Filter[float64], dim)
	for a := range stages {
		stages[a] = CorrelationAlong(a, dim, kernel)
	}
	return Compose(stages...).WithNearest()
}

// BoxSmoothing returns the separable box blur over all axes, under nearest
// boundary conditions.
func BoxSmoothing(dim, radius int) *Pipeline[float64] {
	kernel := BoxKernel(radius)
	stages := make([]*Filter[float64], dim)
	for a := range stages {
		stages[a] = CorrelationAlong(a, dim, kernel)
	}
	return Compose(stages...).WithNearest()
}
