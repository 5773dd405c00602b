package grid

// View is the derived, current-state-dependent ordering of the dataset.
// It is the single source of truth both pagination and virtual windowing
// slice from. Views are recomputed, never mutated.
type View struct {
	// OrderedIDs holds the identity of every row surviving the filter, in
	// sorted order.
	OrderedIDs []string
	// FilteredCount == len(OrderedIDs).
	FilteredCount int
	// TotalCount is the dataset size before filtering.
	TotalCount int
	// AccessErrors counts cells whose accessor panicked during derivation.
	// The affected rows stay visible with the cell treated as missing.
	AccessErrors int
	// DuplicateIDs lists identities shared by more than one row, a caller
	// contract violation. Reported, not fixed: selection and windowing
	// behavior is undefined while duplicates are present.
	DuplicateIDs []string
}
