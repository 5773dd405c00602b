package grid

// Pagination addresses one page of the filtered, sorted sequence.
// PageIndex may point past the end; Slice clamps instead of erroring so a
// later SetData with more rows self-corrects without a new SetPage.
type Pagination struct {
	PageIndex int
	PageSize  int
}

// Slice returns the [start, end) bounds of the page within a sequence of n
// rows. Out-of-range pages collapse to an empty slice at n.
func (p Pagination) Slice(n int) (start, end int) {
	size := p.PageSize
	if size <= 0 {
		return 0, n
	}
	start = p.PageIndex * size
	if p.PageIndex < 0 || start >= n {
		return n, n
	}
	end = start + size
	if end > n {
		end = n
	}
	return start, end
}

// PageCount returns the number of pages needed for n rows.
func (p Pagination) PageCount(n int) int {
	if p.PageSize <= 0 || n <= 0 {
		if n > 0 {
			return 1
		}
		return 0
	}
	return (n + p.PageSize - 1) / p.PageSize
}
