package filter

import (
	"testing"

	"github.com/gogpu/ndim"
)

func TestBoxWindowRowMajor(t *testing.T) {
	w := BoxWindow(1, 2)

	if w.Len() != 9 {
		t.Fatalf("Len = %d, want 9", w.Len())
	}
	// Row-major: axis 0 fastest, starting at the front corner.
	if !w.Offset(0).Equal(ndim.Position{-1, -1}) {
		t.Errorf("first offset = %v, want (-1, -1)", w.Offset(0))
	}
	if !w.Offset(4).Equal(ndim.Position{0, 0}) {
		t.Errorf("center offset = %v, want (0, 0)", w.Offset(4))
	}
	if !w.Offset(8).Equal(ndim.Position{1, 1}) {
		t.Errorf("last offset = %v, want (1, 1)", w.Offset(8))
	}
}

func TestLineWindow(t *testing.T) {
	w := LineWindow(1, 2, 3)

	want := []ndim.Position{{0, -1}, {0, 0}, {0, 1}}
	for i, p := range want {
		if !w.Offset(i).Equal(p) {
			t.Errorf("offset %d = %v, want %v", i, w.Offset(i), p)
		}
	}

	// Even length rounds the origin down.
	even := LineWindow(0, 1, 4)
	if !even.Offset(0).Equal(ndim.Position{-2}) || !even.Offset(3).Equal(ndim.Position{1}) {
		t.Errorf("even window = %v", even.Offsets())
	}
}

func TestCrossWindow(t *testing.T) {
	w := CrossWindow(2)
	if w.Len() != 5 {
		t.Fatalf("Len = %d, want 5", w.Len())
	}
	if !w.Offset(2).Equal(ndim.Position{0, 0}) {
		t.Errorf("center = %v, want origin", w.Offset(2))
	}
}

func TestWindowBounds(t *testing.T) {
	w := WindowFromOffsets(ndim.Position{-2, 1}, ndim.Position{3, -1}, ndim.Position{0, 0})
	b := w.Bounds()

	if !b.Front.Equal(ndim.Position{-2, -1}) || !b.Back.Equal(ndim.Position{3, 1}) {
		t.Errorf("Bounds = %v", b)
	}
}

func TestWindowNegated(t *testing.T) {
	w := WindowFromOffsets(ndim.Position{1, 2}, ndim.Position{-3, 0})
	n := w.Negated()

	if !n.Offset(0).Equal(ndim.Position{-1, -2}) || !n.Offset(1).Equal(ndim.Position{3, 0}) {
		t.Errorf("Negated = %v", n.Offsets())
	}
}
