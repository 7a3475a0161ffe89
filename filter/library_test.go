package filter

import (
	"math"
	"testing"

	"github.com/gogpu/ndim"
)

// impulseResponse returns the centered 3x3 patch of the filter's response
// to a unit impulse on a 5x5 zero image.
func impulseResponse(t *testing.T, apply func(*ndim.Raster[float64]) *ndim.Raster[float64]) []float64 {
	t.Helper()
	r := ndim.New[float64](ndim.Position{5, 5})
	r.Set(ndim.Position{2, 2}, 1)
	out := apply(r)

	patch := make([]float64, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			patch = append(patch, out.At(ndim.Position{2 + dx, 2 + dy}))
		}
	}
	return patch
}

func checkResponse(t *testing.T, name string, got, want []float64) {
	t.Helper()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s response[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestGradientResponses(t *testing.T) {
	cases := []struct {
		name string
		grad func(derivation, averaging, dim int, sign float64) *Pipeline[float64]
		want []float64
	}{
		{"prewitt", PrewittGradient[float64], []float64{
			1, 0, -1,
			1, 0, -1,
			1, 0, -1,
		}},
		{"sobel", SobelGradient[float64], []float64{
			1, 0, -1,
			2, 0, -2,
			1, 0, -1,
		}},
		{"scharr", ScharrGradient[float64], []float64{
			3, 0, -3,
			10, 0, -10,
			3, 0, -3,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := impulseResponse(t, tc.grad(0, 1, 2, 1).Apply)
			checkResponse(t, tc.name, got, tc.want)

			neg := impulseResponse(t, tc.grad(0, 1, 2, -1).Apply)
			for i := range neg {
				if neg[i] != -tc.want[i] {
					t.Errorf("%s negated response[%d] = %v, want %v",
						tc.name, i, neg[i], -tc.want[i])
				}
			}
		})
	}
}

func TestLaplacianResponse(t *testing.T) {
	got := impulseResponse(t, func(r *ndim.Raster[float64]) *ndim.Raster[float64] {
		return Laplacian[float64](2, 1).Apply(ndim.Constant(r, 0))
	})
	checkResponse(t, "laplacian", got, []float64{
		0, 1, 0,
		1, -2, 1,
		0, 1, 0,
	})
}

func TestLaplacianIntegerElements(t *testing.T) {
	in, err := ndim.FromSlice(ndim.Position{3}, []int{0, 4, 0})
	if err != nil {
		t.Fatal(err)
	}
	out := Laplacian[int](1, 1).Apply(ndim.Constant(in, 0))
	want := []int{4, -8, 4}
	for i, w := range want {
		if got := out.AtLinear(i); got != w {
			t.Errorf("out[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestGaussianKernelGeneration(t *testing.T) {
	if got := GaussianKernel(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("GaussianKernel(0) = %v, want [1]", got)
	}

	k := GaussianKernel(1)
	if len(k) != 7 {
		t.Fatalf("len(GaussianKernel(1)) = %d, want 7", len(k))
	}
	sum := 0.0
	for _, v := range k {
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("kernel sum = %v, want 1", sum)
	}
	for i := 0; i < len(k)/2; i++ {
		if k[i] != k[len(k)-1-i] {
			t.Errorf("kernel not symmetric: k[%d]=%v, k[%d]=%v",
				i, k[i], len(k)-1-i, k[len(k)-1-i])
		}
	}
	for i := 1; i <= len(k)/2; i++ {
		if k[i-1] > k[i] {
			t.Errorf("kernel not increasing toward center at index %d", i)
		}
	}
	for i := len(k)/2 + 1; i < len(k); i++ {
		if k[i] > k[i-1] {
			t.Errorf("kernel not decreasing past center at index %d", i)
		}
	}
}

func TestBoxKernelGeneration(t *testing.T) {
	k := BoxKernel(2)
	if len(k) != 5 {
		t.Fatalf("len(BoxKernel(2)) = %d, want 5", len(k))
	}
	for i, v := range k {
		if v != 0.2 {
			t.Errorf("BoxKernel(2)[%d] = %v, want 0.2", i, v)
		}
	}
	if got := BoxKernel(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("BoxKernel(0) = %v, want [1]", got)
	}
}

// A normalized blur under nearest boundary conditions must leave a
// constant image unchanged up to rounding.
func TestSmoothingPreservesConstant(t *testing.T) {
	r := ndim.New[float64](ndim.Position{6, 4})
	r.Fill(5)

	for _, tc := range []struct {
		name string
		out  *ndim.Raster[float64]
	}{
		{"gaussian", GaussianSmoothing(2, 1.5).Apply(r)},
		{"box", BoxSmoothing(2, 2).Apply(r)},
	} {
		for i := 0; i < tc.out.Size(); i++ {
			if math.Abs(tc.out.AtLinear(i)-5) > 1e-9 {
				t.Errorf("%s smoothing altered constant image at %d: %v",
					tc.name, i, tc.out.AtLinear(i))
				break
			}
		}
	}
}

func TestSmoothingReducesVariance(t *testing.T) {
	r := ndim.New[float64](ndim.Position{16, 16})
	for i := 0; i < r.Size(); i++ {
		if i%2 == 0 {
			r.SetLinear(i, 10)
		}
	}
	out := GaussianSmoothing(2, 2).Apply(r)

	spread := func(x *ndim.Raster[float64]) float64 {
		lo, hi := x.AtLinear(0), x.AtLinear(0)
		for i := 1; i < x.Size(); i++ {
			lo = min(lo, x.AtLinear(i))
			hi = max(hi, x.AtLinear(i))
		}
		return hi - lo
	}
	if spread(out) >= spread(r) {
		t.Errorf("smoothing did not reduce spread: %v >= %v", spread(out), spread(r))
	}
}
