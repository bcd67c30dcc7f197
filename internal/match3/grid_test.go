package match3_test

import (
	"testing"

	"github.com/vovakirdan/crunch/internal/match3"
)

func TestGridSetGetClear(t *testing.T) {
	g := match3.NewGrid[int](4, 3)

	if g.Columns() != 4 || g.Rows() != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", g.Columns(), g.Rows())
	}
	if _, ok := g.Get(2, 1); ok {
		t.Error("new grid cell should be empty")
	}

	g.Set(2, 1, 7)
	g.Set(0, 0, 0)
	if v, ok := g.Get(2, 1); !ok || v != 7 {
		t.Errorf("Get(2,1) = %d,%v, expected 7,true", v, ok)
	}
	if _, ok := g.Get(0, 0); !ok {
		t.Error("zero value should still count as filled")
	}
	if g.Count() != 2 {
		t.Errorf("Count = %d, expected 2", g.Count())
	}

	g.Clear(2, 1)
	if _, ok := g.Get(2, 1); ok {
		t.Error("cleared cell should be empty")
	}

	g.Reset()
	if g.Count() != 0 {
		t.Errorf("Count after Reset = %d, expected 0", g.Count())
	}
}

func TestGridInBounds(t *testing.T) {
	g := match3.NewGrid[int](3, 2)

	tests := []struct {
		column, row int
		expected    bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tc := range tests {
		if got := g.InBounds(tc.column, tc.row); got != tc.expected {
			t.Errorf("InBounds(%d,%d) = %v, expected %v", tc.column, tc.row, got, tc.expected)
		}
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := match3.NewGrid[int](3, 3)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-bounds access")
		}
	}()
	g.Get(3, 0)
}

func TestNewGridInvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero-sized grid")
		}
	}()
	match3.NewGrid[int](0, 3)
}
