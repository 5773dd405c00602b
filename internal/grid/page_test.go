package grid

import "testing"

func TestPageSliceBasic(t *testing.T) {
	p := Pagination{PageIndex: 1, PageSize: 2}
	start, end := p.Slice(3)
	if start != 2 || end != 3 {
		t.Fatalf("got [%d,%d), want [2,3)", start, end)
	}
}

func TestPageSlicePastEndClampsEmpty(t *testing.T) {
	p := Pagination{PageIndex: 9, PageSize: 10}
	start, end := p.Slice(5)
	if start != end {
		t.Fatalf("out-of-range page must be empty, got [%d,%d)", start, end)
	}
}

func TestPageSliceZeroSizeMeansEverything(t *testing.T) {
	p := Pagination{PageIndex: 0, PageSize: 0}
	start, end := p.Slice(7)
	if start != 0 || end != 7 {
		t.Fatalf("got [%d,%d), want [0,7)", start, end)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 2, 2},
	}
	for _, tc := range cases {
		p := Pagination{PageSize: tc.size}
		if got := p.PageCount(tc.n); got != tc.want {
			t.Fatalf("PageCount(%d) with size %d = %d, want %d", tc.n, tc.size, got, tc.want)
		}
	}
}

// Concatenating every page must reproduce the sequence with no gaps or
// duplicates.
func TestPaginationCoverage(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 50} {
		p := Pagination{PageSize: size}
		n := 23
		var got []int
		for page := 0; page < p.PageCount(n); page++ {
			p.PageIndex = page
			start, end := p.Slice(n)
			for i := start; i < end; i++ {
				got = append(got, i)
			}
		}
		if len(got) != n {
			t.Fatalf("size %d: covered %d of %d", size, len(got), n)
		}
		for i := range got {
			if got[i] != i {
				t.Fatalf("size %d: index %d out of place", size, i)
			}
		}
	}
}
