package qm

// trit is one position of an implicant: a cared-for bit or a dash.
type trit uint8

const (
	zero trit = iota
	one
	dontCare
)

// row is a (partial) assignment over the active variables together with
// the sorted minterm indices it covers. A freshly seeded row covers
// exactly its own index; merged rows accumulate the union.
type row struct {
	values []trit
	ids    []int
}

func newRow(id, width int) row {
	values := make([]trit, width)
	for i := range values {
		if (id>>(width-i-1))&1 == 1 {
			values[i] = one
		}
	}
	return row{values: values, ids: []int{id}}
}

// care returns a bitmask of the positions that are not dashes, MSB
// first like the value encoding.
func (r row) care() uint {
	var mask uint
	for i, v := range r.values {
		if v != dontCare {
			mask |= 1 << (len(r.values) - i - 1)
		}
	}
	return mask
}

// bits returns the cared-for values as a bitmask; dashes read as 0.
func (r row) bits() uint {
	var mask uint
	for i, v := range r.values {
		if v == one {
			mask |= 1 << (len(r.values) - i - 1)
		}
	}
	return mask
}

// canMerge reports whether two rows care about the same positions and
// disagree in exactly one of them.
func (r row) canMerge(other row) bool {
	if r.care() != other.care() {
		return false
	}
	diff := r.bits() ^ other.bits()
	return diff != 0 && diff&(diff-1) == 0
}

// merge replaces the disagreeing position with a dash and unions the
// covered minterms, keeping them sorted.
func (r row) merge(other row) row {
	diff := r.bits() ^ other.bits()
	values := make([]trit, len(r.values))
	copy(values, r.values)
	for i := range values {
		if diff&(1<<(len(values)-i-1)) != 0 {
			values[i] = dontCare
		}
	}
	ids := mergeSorted(r.ids, other.ids)
	return row{values: values, ids: ids}
}

func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

func (r row) equal(other row) bool {
	if len(r.values) != len(other.values) || len(r.ids) != len(other.ids) {
		return false
	}
	for i := range r.values {
		if r.values[i] != other.values[i] {
			return false
		}
	}
	for i := range r.ids {
		if r.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

// covers reports whether the row covers minterm id.
func (r row) covers(id int) bool {
	for _, v := range r.ids {
		if v == id {
			return true
		}
	}
	return false
}

// weight is the literal-count tie-break metric from Petrick's method:
// dashes cost nothing, ones cost 1, zeroes cost 2.
func (r row) weight() int {
	w := 0
	for _, v := range r.values {
		switch v {
		case one:
			w++
		case zero:
			w += 2
		}
	}
	return w
}

func (r row) String() string {
	buf := make([]byte, len(r.values))
	for i, v := range r.values {
		switch v {
		case one:
			buf[i] = '1'
		case zero:
			buf[i] = '0'
		default:
			buf[i] = '-'
		}
	}
	return string(buf)
}
