package smolyak

import (
	"github.com/notargets/gosmolyak/utils"
)

/*
	SmolyakIndices enumerates the admissible multi-indices (i1, ..., id) with
	each ik in [1, mu+1] and d < i1+...+id <= d+mu.

	The enumeration walks the non-decreasing tuples (combinations with
	replacement), then expands each kept tuple to all of its distinct
	permutations - each permutation selects different per-dimension chain
	levels, so order within a tuple matters downstream. The all-ones index is
	always admissible (its sum is exactly d) and is excluded by the strict
	lower bound, so it is appended exactly once at the end.

	The returned order is the canonical order shared by the grid and basis
	assembly: grid rows and collocation matrix columns are paired positionally
	through it.
*/
func SmolyakIndices(d, mu int) (inds []utils.Index) {
	var (
		comb = make(utils.Index, d)
		walk func(pos, min, sum int)
	)
	walk = func(pos, min, sum int) {
		if sum+(d-pos) > d+mu { // even all-ones for the remainder overflows
			return
		}
		if pos == d {
			if sum > d {
				inds = append(inds, permutations(comb)...)
			}
			return
		}
		for val := min; val <= mu+1; val++ {
			comb[pos] = val
			walk(pos+1, val, sum+val)
		}
	}
	walk(0, 1, 0)
	inds = append(inds, utils.NewOnes(d))
	return
}

// permutations expands a non-decreasing tuple to all of its distinct
// permutations in lexicographic order, starting from the tuple itself
func permutations(comb utils.Index) (perms []utils.Index) {
	var (
		n = len(comb)
		p = comb.Copy()
	)
	for {
		perms = append(perms, p.Copy())
		// next lexicographic permutation of the multiset
		i := n - 2
		for i >= 0 && p[i] >= p[i+1] {
			i--
		}
		if i < 0 {
			return
		}
		j := n - 1
		for p[j] <= p[i] {
			j--
		}
		p[i], p[j] = p[j], p[i]
		for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
			p[l], p[r] = p[r], p[l]
		}
	}
}

// NumGridPoints returns the closed-form grid size for mu in {1, 2, 3}.
// The bool is false outside that range, where no closed form is carried.
func NumGridPoints(d, mu int) (n int, ok bool) {
	switch mu {
	case 1:
		return 2*d + 1, true
	case 2:
		return 1 + 4*d + 4*d*(d-1)/2, true
	case 3:
		return 1 + 8*d + 12*d*(d-1)/2 + 8*d*(d-1)*(d-2)/6, true
	}
	return 0, false
}
