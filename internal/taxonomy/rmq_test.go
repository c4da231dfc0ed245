package taxonomy

import "testing"

func Test_log2Floor(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0}, {2, 1}, {3, 1}, {4, 2}, {7, 2}, {8, 3}, {14, 3},
	}
	for _, tt := range tests {
		if got := log2Floor(tt.n); got != tt.want {
			t.Errorf("log2Floor(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func Test_Tree_rangeMinimumQuery_singleElementRange(t *testing.T) {
	tree := testTree(t)
	// i == j must return that single tour position.
	got := tree.rangeMinimumQuery(0, 0)
	if got != 0 {
		t.Errorf("rangeMinimumQuery(0, 0) = %d, want 0", got)
	}
}
