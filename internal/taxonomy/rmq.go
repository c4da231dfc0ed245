package taxonomy

import "math/bits"

// log2Floor returns floor(log2(n)) for n >= 1.
func log2Floor(n int) int {
	return bits.Len(uint(n)) - 1
}

// buildSparseTable builds the O(N log N) sparse table over t.l (the
// Euler tour's depth sequence) that answers a range-minimum-by-depth
// query in O(1): m[i][j] holds the index into the tour of the
// shallowest node among the 2^j tour positions starting at i.
func (t *Tree) buildSparseTable() {
	dimension := len(t.l)
	if dimension == 0 {
		return
	}
	k := log2Floor(dimension) + 1

	m := make([][]int32, dimension)
	for i := range m {
		m[i] = make([]int32, k)
		m[i][0] = int32(i)
	}

	for j := 1; (1 << j) <= dimension; j++ {
		half := 1 << (j - 1)
		for i := 0; i+(1<<j)-1 < dimension; i++ {
			a := m[i][j-1]
			b := m[i+half][j-1]
			if t.l[a] < t.l[b] {
				m[i][j] = a
			} else {
				m[i][j] = b
			}
		}
	}

	t.m = m
}

// rangeMinimumQuery returns the tour index of the shallowest node in
// e[i..j] inclusive. Requires j >= i.
func (t *Tree) rangeMinimumQuery(i, j int) int32 {
	k := log2Floor(j - i + 1)
	a := t.m[i][k]
	b := t.m[j-(1<<k)+1][k]
	if t.l[a] <= t.l[b] {
		return a
	}
	return b
}
