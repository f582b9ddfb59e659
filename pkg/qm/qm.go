package qm

// primeImplicants repeatedly merges rows that differ in exactly one
// care bit. A row that no partner absorbs in a pass is prime. Passes
// continue until a round produces no new rows.
func primeImplicants(seed []row) []row {
	implicants := seed
	var primes []row
	for len(implicants) > 0 {
		var next []row
		used := make([]bool, len(implicants))
		for i := range implicants {
			for j := i + 1; j < len(implicants); j++ {
				if implicants[i].canMerge(implicants[j]) {
					next = appendUnique(next, implicants[i].merge(implicants[j]))
					used[i] = true
					used[j] = true
				}
			}
			if !used[i] {
				primes = appendUnique(primes, implicants[i])
			}
		}
		implicants = next
	}
	return primes
}

func appendUnique(rows []row, r row) []row {
	for _, existing := range rows {
		if existing.equal(r) {
			return rows
		}
	}
	return append(rows, r)
}

func containsRow(rows []row, r row) bool {
	for _, existing := range rows {
		if existing.equal(r) {
			return true
		}
	}
	return false
}

// selectCover picks the essential prime implicants, then closes the
// remaining gaps with Petrick's method. seeds are the original
// zero-rows; tableSize is 2^n.
func selectCover(seeds, primes []row, tableSize int) []row {
	covered := make([]bool, tableSize)
	var cover []row
	for _, minterm := range seeds {
		id := minterm.ids[0]
		count, last := 0, -1
		for i, p := range primes {
			if p.covers(id) {
				count++
				last = i
			}
		}
		// A minterm with a single covering implicant forces it in.
		if count == 1 && !containsRow(cover, primes[last]) {
			cover = append(cover, primes[last])
			for _, cid := range primes[last].ids {
				covered[cid] = true
			}
		}
	}
	return append(cover, petrick(primes, covered)...)
}
