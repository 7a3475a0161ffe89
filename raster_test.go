package ndim

import (
	"errors"
	"testing"
)

func TestNewRasterZeroInitialized(t *testing.T) {
	r := New[float64](Position{4, 3})

	if r.Size() != 12 {
		t.Fatalf("Size = %d, want 12", r.Size())
	}
	for i := 0; i < r.Size(); i++ {
		if r.AtLinear(i) != 0 {
			t.Fatalf("element %d = %v, want 0", i, r.AtLinear(i))
		}
	}
	if !r.Owns() {
		t.Error("New raster should own its buffer")
	}
}

func TestFromSliceCopies(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6}
	r, err := FromSlice(Position{3, 2}, data)
	if err != nil {
		t.Fatal(err)
	}

	data[0] = 99
	if r.AtLinear(0) != 1 {
		t.Error("FromSlice must copy the source slice")
	}
}

func TestFromSliceShapeMismatch(t *testing.T) {
	_, err := FromSlice(Position{3, 2}, []int32{1, 2, 3})

	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("err = %v, want ShapeError", err)
	}
	if shapeErr.Len != 3 {
		t.Errorf("ShapeError.Len = %d, want 3", shapeErr.Len)
	}
}

func TestAdoptSharesBuffer(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	r, err := Adopt(Position{2, 2}, data)
	if err != nil {
		t.Fatal(err)
	}

	r.SetLinear(0, 42)
	if data[0] != 42 {
		t.Error("Adopt must not copy the buffer")
	}
}

func TestRasterIndexingRowMajor(t *testing.T) {
	r := MustFromSlice(Position{4, 3}, []int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})

	tests := []struct {
		p    Position
		want int
	}{
		{Position{0, 0}, 0},
		{Position{3, 0}, 3},
		{Position{0, 1}, 4},
		{Position{2, 2}, 10},
	}
	for _, tt := range tests {
		if got := r.At(tt.p); got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}

	r.Set(Position{1, 1}, 55)
	if r.AtLinear(5) != 55 {
		t.Errorf("Set(1,1) wrote to the wrong slot")
	}
}

func TestRasterDomain(t *testing.T) {
	r := New[uint8](Position{5, 4, 3})
	d := r.Domain()

	if !d.Front.Equal(Position{0, 0, 0}) || !d.Back.Equal(Position{4, 3, 2}) {
		t.Errorf("Domain = %v", d)
	}
	if d.Size() != r.Size() {
		t.Errorf("domain size %d != raster size %d", d.Size(), r.Size())
	}
}

func TestRasterFillAndClone(t *testing.T) {
	r := New[float64](Position{3, 3})
	r.Fill(7)

	c := r.Clone()
	c.SetLinear(0, 0)
	if r.AtLinear(0) != 7 {
		t.Error("Clone must not share the buffer")
	}
}

func TestMapAndZip(t *testing.T) {
	r := MustFromSlice(Position{2, 2}, []float64{1, 2, 3, 4})

	doubled := Map(r, func(v float64) float64 { return 2 * v })
	if doubled.AtLinear(3) != 8 {
		t.Errorf("Map result = %v", doubled.Data())
	}

	sum, err := Zip(r, doubled, func(a, b float64) float64 { return a + b })
	if err != nil {
		t.Fatal(err)
	}
	if sum.AtLinear(3) != 12 {
		t.Errorf("Zip result = %v", sum.Data())
	}

	other := New[float64](Position{3, 3})
	_, err = Zip(r, other, func(a, b float64) float64 { return a })
	var mismatchErr *MismatchError
	if !errors.As(err, &mismatchErr) {
		t.Fatalf("err = %v, want MismatchError", err)
	}
	if !mismatchErr.A.Equal(Position{2, 2}) || !mismatchErr.B.Equal(Position{3, 3}) {
		t.Errorf("MismatchError = %v", mismatchErr)
	}
}
