package qm

import "sort"

// petrick resolves the minterms left uncovered by the essential
// implicants. It builds a product of sums (one sum per uncovered
// minterm, listing the candidate implicants that cover it), distributes
// it into a sum of products with x+xy=x absorption, and picks a
// smallest product, breaking ties by total literal weight.
func petrick(primes []row, covered []bool) []row {
	var candidates []row
	for _, p := range primes {
		for _, id := range p.ids {
			if !covered[id] {
				candidates = append(candidates, p)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var sums [][]int
	for id, done := range covered {
		if done {
			continue
		}
		var sum []int
		for i, p := range candidates {
			if p.covers(id) {
				sum = append(sum, i)
			}
		}
		// Row indices never seeded have no covering implicant; skip.
		if len(sum) > 0 {
			sums = append(sums, sum)
		}
	}

	sop := distribute(pruneSums(sums))

	minLen := len(sop[0])
	for _, p := range sop[1:] {
		if len(p) < minLen {
			minLen = len(p)
		}
	}
	best, bestWeight := -1, 0
	for i, p := range sop {
		if len(p) != minLen {
			continue
		}
		w := 0
		for _, idx := range p {
			w += candidates[idx].weight()
		}
		if best == -1 || w < bestWeight {
			best, bestWeight = i, w
		}
	}

	picked := make([]row, 0, minLen)
	for _, idx := range sop[best] {
		picked = append(picked, candidates[idx])
	}
	return picked
}

// pruneSums deduplicates the product and drops sums dominated by a
// subset: (x+y)(x) reduces to (x) before any distribution happens.
func pruneSums(sums [][]int) [][]int {
	for _, s := range sums {
		sort.Ints(s)
	}
	kept := make([][]int, 0, len(sums))
	for i, s := range sums {
		dominated := false
		for j, other := range sums {
			if i == j {
				continue
			}
			if strictSubset(other, s) || (equalInts(other, s) && j < i) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, s)
		}
	}
	return kept
}

// distribute multiplies the sums one by one, absorbing after each step
// to keep the intermediate sum of products small.
func distribute(sums [][]int) [][]int {
	sop := make([][]int, 0, len(sums[0]))
	for _, v := range sums[0] {
		sop = append(sop, []int{v})
	}
	for _, sum := range sums[1:] {
		next := make([][]int, 0, len(sop)*len(sum))
		for _, p := range sop {
			for _, v := range sum {
				next = append(next, insertSorted(p, v))
			}
		}
		sop = absorb(next)
	}
	return sop
}

// absorb removes duplicate products and any product that is a strict
// superset of another (x + xy = x).
func absorb(products [][]int) [][]int {
	kept := make([][]int, 0, len(products))
	for i, p := range products {
		redundant := false
		for j, other := range products {
			if i == j {
				continue
			}
			if strictSubset(other, p) || (equalInts(other, p) && j < i) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, p)
		}
	}
	return kept
}

// insertSorted returns a fresh sorted copy of p with v included (no
// duplicates).
func insertSorted(p []int, v int) []int {
	out := make([]int, 0, len(p)+1)
	inserted := false
	for _, x := range p {
		if x == v {
			inserted = true
		}
		if !inserted && x > v {
			out = append(out, v)
			inserted = true
		}
		out = append(out, x)
	}
	if !inserted {
		out = append(out, v)
	}
	return out
}

// strictSubset reports a ⊂ b for sorted slices.
func strictSubset(a, b []int) bool {
	if len(a) >= len(b) {
		return false
	}
	i := 0
	for _, x := range b {
		if i < len(a) && a[i] == x {
			i++
		}
	}
	return i == len(a)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
