package match3_test

import (
	"testing"

	"github.com/vovakirdan/crunch/internal/match3"
)

func TestSwapEquality(t *testing.T) {
	s := match3.NewSwap(3, 8)

	if !s.Equal(s.Reversed()) {
		t.Error("swap should equal its reverse")
	}
	if s.Key() != s.Reversed().Key() {
		t.Error("reversed swap should share the key")
	}
	if s.Equal(match3.NewSwap(3, 9)) {
		t.Error("swaps of different pieces should differ")
	}
	if r := s.Reversed(); r.From != 8 || r.To != 3 {
		t.Errorf("Reversed = %v, expected swap(#8,#3)", r)
	}
}

func TestSwapSet(t *testing.T) {
	set := match3.SwapSet{}
	set.Add(match3.NewSwap(5, 2))
	set.Add(match3.NewSwap(2, 5))
	set.Add(match3.NewSwap(1, 4))

	if set.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", set.Len())
	}
	if !set.Contains(match3.NewSwap(5, 2)) || !set.Contains(match3.NewSwap(2, 5)) {
		t.Error("set should contain the swap in both orders")
	}
	if set.Contains(match3.NewSwap(1, 5)) {
		t.Error("unexpected swap in set")
	}

	swaps := set.Slice()
	if swaps[0].Key() != (match3.SwapKey{Lo: 1, Hi: 4}) {
		t.Errorf("Slice not sorted: %v", swaps)
	}
	// The first insertion keeps its direction.
	if swaps[1].From != 5 || swaps[1].To != 2 {
		t.Errorf("expected first-added direction swap(#5,#2), got %v", swaps[1])
	}
}

func TestDirOpposite(t *testing.T) {
	for _, d := range []match3.Dir{match3.DirUp, match3.DirRight, match3.DirDown, match3.DirLeft} {
		dc, dr := d.Delta()
		oc, or := d.Opposite().Delta()
		if dc+oc != 0 || dr+or != 0 {
			t.Errorf("%v and %v do not cancel", d, d.Opposite())
		}
	}
}
