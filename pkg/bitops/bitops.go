// Package bitops holds the small numeric exercises shipped alongside
// the symbolic engine: addition and multiplication built from bitwise
// primitives, Gray code, and power-set enumeration.
package bitops

import "sort"

// Adder adds two numbers using only ^, & and <<. Overflow wraps.
func Adder(a, b uint32) uint32 {
	sum := a ^ b
	carry := (a & b) << 1
	for carry != 0 {
		sum, carry = sum^carry, (sum&carry)<<1
	}
	return sum
}

// Multiplier multiplies by shift-and-add, using Adder for the additions.
func Multiplier(a, b uint32) uint32 {
	var result uint32
	for b != 0 {
		if b&1 == 1 {
			result = Adder(result, a)
		}
		b >>= 1
		a <<= 1
	}
	return result
}

// GrayCode returns the reflected binary code of n.
func GrayCode(n uint32) uint32 {
	return n ^ (n >> 1)
}

// Powerset enumerates every subset of the input, ordered by size. The
// empty subset comes first and is non-nil.
func Powerset(set []int) [][]int {
	subsets := make([][]int, 0, 1<<len(set))
	for mask := 0; mask < 1<<len(set); mask++ {
		subset := make([]int, 0)
		for i, n := range set {
			if mask&(1<<i) != 0 {
				subset = append(subset, n)
			}
		}
		subsets = append(subsets, subset)
	}
	sort.SliceStable(subsets, func(i, j int) bool {
		return len(subsets[i]) < len(subsets[j])
	})
	return subsets
}
