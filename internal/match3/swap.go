package match3

import (
	"fmt"
	"sort"
)

// Swap is an exchange between two adjacent pieces. From and To keep the
// direction of the gesture for presentation; equality ignores it.
type Swap struct {
	From PieceID
	To   PieceID
}

// SwapKey is the order-independent identity of a swap.
type SwapKey struct {
	Lo, Hi PieceID
}

// NewSwap creates a swap from a to b.
func NewSwap(a, b PieceID) Swap {
	return Swap{From: a, To: b}
}

// Key returns the unordered pair identifying this swap.
func (s Swap) Key() SwapKey {
	if s.From <= s.To {
		return SwapKey{Lo: s.From, Hi: s.To}
	}
	return SwapKey{Lo: s.To, Hi: s.From}
}

// Equal returns true if both swaps exchange the same two pieces.
func (s Swap) Equal(other Swap) bool {
	return s.Key() == other.Key()
}

// Reversed returns the same swap with From and To exchanged.
func (s Swap) Reversed() Swap {
	return Swap{From: s.To, To: s.From}
}

// String returns a debug representation.
func (s Swap) String() string {
	return fmt.Sprintf("swap(#%d,#%d)", s.From, s.To)
}

// SwapSet is a set of swaps keyed by their unordered piece pair.
type SwapSet map[SwapKey]Swap

// Add inserts a swap. A swap equal to an existing entry is not added twice.
func (s SwapSet) Add(swap Swap) {
	k := swap.Key()
	if _, ok := s[k]; ok {
		return
	}
	s[k] = swap
}

// Contains reports whether a swap exchanging the same pieces is present.
func (s SwapSet) Contains(swap Swap) bool {
	_, ok := s[swap.Key()]
	return ok
}

// Len returns the number of swaps.
func (s SwapSet) Len() int {
	return len(s)
}

// Slice returns the swaps ordered by their keys.
func (s SwapSet) Slice() []Swap {
	keys := make([]SwapKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lo != keys[j].Lo {
			return keys[i].Lo < keys[j].Lo
		}
		return keys[i].Hi < keys[j].Hi
	})
	swaps := make([]Swap, len(keys))
	for i, k := range keys {
		swaps[i] = s[k]
	}
	return swaps
}
