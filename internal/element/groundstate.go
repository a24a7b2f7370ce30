package element

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Elements whose ground state departs from Madelung filling.
var exceptions = map[int]string{
	24:  "[Ar] 3d5 4s1",
	29:  "[Ar] 3d10 4s1",
	41:  "[Kr] 4d4 5s1",
	42:  "[Kr] 4d5 5s1",
	44:  "[Kr] 4d7 5s1",
	45:  "[Kr] 4d8 5s1",
	46:  "[Kr] 4d10",
	47:  "[Kr] 4d10 5s1",
	57:  "[Xe] 5d1 6s2",
	58:  "[Xe] 4f1 5d1 6s2",
	64:  "[Xe] 4f7 5d1 6s2",
	78:  "[Xe] 4f14 5d9 6s1",
	79:  "[Xe] 4f14 5d10 6s1",
	89:  "[Rn] 6d1 7s2",
	90:  "[Rn] 6d2 7s2",
	91:  "[Rn] 5f2 6d1 7s2",
	92:  "[Rn] 5f3 6d1 7s2",
	93:  "[Rn] 5f4 6d1 7s2",
	96:  "[Rn] 5f7 6d1 7s2",
	103: "[Rn] 5f14 7s2 7p1",
}

// madelung lists subshells in filling order: increasing n+l, then n.
var madelung = func() []Subshell {
	var order []Subshell
	for n := 1; n <= 7; n++ {
		for l := 0; l < n && l <= 3; l++ {
			order = append(order, Subshell{N: n, L: l})
		}
	}
	slices.SortStableFunc(order, func(a, b Subshell) int {
		if a.N+a.L != b.N+b.L {
			return (a.N + a.L) - (b.N + b.L)
		}
		return a.N - b.N
	})
	return order
}()

// GroundState returns the neutral ground-state configuration of element z.
func GroundState(z int) (Configuration, error) {
	if z < 1 || z > MaxZ {
		return nil, fmt.Errorf("%w: Z=%d", ErrNoGroundState, z)
	}
	if spec, ok := exceptions[z]; ok {
		return Parse(spec)
	}

	left := float64(z)
	var shells []Subshell
	for _, s := range madelung {
		if left <= 0 {
			break
		}
		occ := s.Capacity()
		if left < occ {
			occ = left
		}
		shells = append(shells, Subshell{N: s.N, L: s.L, Occupancy: occ})
		left -= occ
	}
	return NewConfiguration(shells...)
}
