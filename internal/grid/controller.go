package grid

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"tabular/internal/util/logx"
)

// Controller owns the composite table state (data, sort, filter, pagination,
// selection) and re-derives the View after every mutation. Every operation
// is a synchronous transition followed by a full recomputation; with bounded
// datasets (low thousands of rows) the O(n log n) re-derive is cheaper than
// keeping incremental state honest. Mutations are serialized by a mutex
// because setSort/setFilter/setPage do not commute when interleaved.
type Controller[T any] struct {
	mu sync.Mutex

	columns []Column[T]
	rowID   func(T) string
	compile func(string) (ExprMatcher, error)

	rows []T
	ids  []string

	sortSpec SortSpec
	filter   FilterState
	page     Pagination
	sel      *Selection
	expr     ExprMatcher

	dirty bool
	order []int // indices into rows, filtered and sorted
	view  View
}

type Option[T any] func(*Controller[T])

// WithRowID supplies the identity accessor. Identity must be stable and
// unique across recomputations of the same dataset; without it rows are
// keyed by their ordinal position in the dataset.
func WithRowID[T any](fn func(T) string) Option[T] {
	return func(c *Controller[T]) { c.rowID = fn }
}

func WithPageSize[T any](n int) Option[T] {
	return func(c *Controller[T]) {
		if n > 0 {
			c.page.PageSize = n
		}
	}
}

// WithExprCompiler enables expression filters (FilterState.Expression) by
// injecting a compiler, keeping the engine free of the expression library.
func WithExprCompiler[T any](fn func(string) (ExprMatcher, error)) Option[T] {
	return func(c *Controller[T]) { c.compile = fn }
}

func NewController[T any](columns []Column[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		columns: columns,
		filter:  FilterState{PerColumn: map[string]string{}},
		page:    Pagination{PageSize: 50},
		sel:     NewSelection(),
		dirty:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller[T]) Columns() []Column[T] { return c.columns }

// SetData replaces the dataset. The page index resets (an old deep page
// against new data is almost certainly wrong) but selection is kept: it is
// identity-keyed and pruning is the caller's explicit call.
func (c *Controller[T]) SetData(rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = rows
	c.ids = make([]string, len(rows))
	for i := range rows {
		if c.rowID != nil {
			c.ids[i] = c.rowID(rows[i])
		} else {
			c.ids[i] = strconv.Itoa(i)
		}
	}
	c.page.PageIndex = 0
	c.dirty = true
}

// SetSort advances the sort spec for columnID. With multi=false the spec is
// replaced and the column cycles asc -> desc -> none; with multi=true the
// column is appended/updated/removed in place. Unknown or non-sortable
// column ids are ignored. The page index is deliberately not reset: sorting
// permutes the same result set.
func (c *Controller[T]) SetSort(columnID string, multi bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := columnIndex(c.columns, columnID)
	if i < 0 || !c.columns[i].Sortable {
		logx.Debugf("grid: setSort ignored for unknown column %q", columnID)
		return
	}
	c.sortSpec = c.sortSpec.Toggle(columnID, multi)
	c.dirty = true
}

func (c *Controller[T]) Sort() SortSpec { c.mu.Lock(); defer c.mu.Unlock(); return c.sortSpec }

// SetFilter sets the filter text for a column; the empty column id
// addresses the global slot. Filtering changes the result set size, so the
// page index resets. Unknown column ids are a no-op.
func (c *Controller[T]) SetFilter(columnID, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if columnID == "" {
		c.filter.Global = text
	} else {
		if columnIndex(c.columns, columnID) < 0 {
			logx.Debugf("grid: setFilter ignored for unknown column %q", columnID)
			return
		}
		if text == "" {
			delete(c.filter.PerColumn, columnID)
		} else {
			c.filter.PerColumn[columnID] = text
		}
	}
	c.page.PageIndex = 0
	c.dirty = true
}

// SetExpression compiles and installs an expression filter. A failed
// compile leaves the current state untouched and is returned to the caller.
func (c *Controller[T]) SetExpression(src string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if src == "" {
		c.filter.Expression = ""
		c.expr = nil
		c.page.PageIndex = 0
		c.dirty = true
		return nil
	}
	if c.compile == nil {
		return fmt.Errorf("expression filters are not enabled")
	}
	m, err := c.compile(src)
	if err != nil {
		return err
	}
	c.filter.Expression = src
	c.expr = m
	c.page.PageIndex = 0
	c.dirty = true
	return nil
}

func (c *Controller[T]) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = FilterState{PerColumn: map[string]string{}}
	c.expr = nil
	c.page.PageIndex = 0
	c.dirty = true
}

func (c *Controller[T]) Filter() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.clone()
}

func (c *Controller[T]) SetPage(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 {
		index = 0
	}
	c.page.PageIndex = index
}

func (c *Controller[T]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size <= 0 {
		return
	}
	c.page.PageSize = size
	c.page.PageIndex = 0
}

func (c *Controller[T]) Page() Pagination { c.mu.Lock(); defer c.mu.Unlock(); return c.page }

// View derives (if needed) and returns the current view. Derivation is
// deterministic for a given state: filter, then stable sort, no hidden
// randomness or time dependence.
func (c *Controller[T]) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deriveLocked()
	return c.view
}

func (c *Controller[T]) deriveLocked() {
	if !c.dirty {
		return
	}
	accessErrors := 0
	for i := range c.rows {
		for j := range c.columns {
			if _, err := c.columns[j].Value(c.rows[i]); err != nil {
				accessErrors++
			}
		}
	}
	order := make([]int, 0, len(c.rows))
	for i := range c.rows {
		if Keep(c.rows[i], c.columns, c.filter, c.expr) {
			order = append(order, i)
		}
	}
	if keys := activeKeys(c.columns, c.sortSpec); len(keys) > 0 {
		sort.SliceStable(order, func(a, b int) bool {
			return compareRows(c.rows[order[a]], c.rows[order[b]], keys) < 0
		})
	}
	ids := make([]string, len(order))
	for i, idx := range order {
		ids[i] = c.ids[idx]
	}
	c.order = order
	c.view = View{
		OrderedIDs:    ids,
		FilteredCount: len(order),
		TotalCount:    len(c.rows),
		AccessErrors:  accessErrors,
		DuplicateIDs:  duplicateIDs(c.ids),
	}
	if len(c.view.DuplicateIDs) > 0 {
		logx.Warnf("grid: %d duplicate row identities (first: %q); selection and windowing are unreliable until the caller fixes row ids", len(c.view.DuplicateIDs), c.view.DuplicateIDs[0])
	}
	c.dirty = false
}

func duplicateIDs(ids []string) []string {
	seen := make(map[string]int, len(ids))
	for _, id := range ids {
		seen[id]++
	}
	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)
	return dups
}

// ViewRows returns every row of the current view in view order.
func (c *Controller[T]) ViewRows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deriveLocked()
	out := make([]T, len(c.order))
	for i, idx := range c.order {
		out[i] = c.rows[idx]
	}
	return out
}

// PageRows returns the rows of the current page. A page index past the end
// yields an empty slice; the stored index is left as-is so a later SetData
// with more rows self-corrects.
func (c *Controller[T]) PageRows() []T {
	rows, _ := c.PageSlice()
	return rows
}

// PageSlice returns the current page's rows and their identities.
func (c *Controller[T]) PageSlice() ([]T, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deriveLocked()
	start, end := c.page.Slice(len(c.order))
	rows := make([]T, 0, end-start)
	ids := make([]string, 0, end-start)
	for _, idx := range c.order[start:end] {
		rows = append(rows, c.rows[idx])
		ids = append(ids, c.ids[idx])
	}
	return rows, ids
}

// Window computes the virtual window over the current view.
func (c *Controller[T]) Window(rowExtent, viewportExtent, scrollOffset, overscan int) Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deriveLocked()
	return ComputeWindow(len(c.order), rowExtent, viewportExtent, scrollOffset, overscan)
}

// WindowSlice materializes the rows and identities of a window.
func (c *Controller[T]) WindowSlice(w Window) ([]T, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deriveLocked()
	if w.Empty() {
		return nil, nil
	}
	start, end := w.Start, w.End+1
	if start < 0 {
		start = 0
	}
	if end > len(c.order) {
		end = len(c.order)
	}
	if start >= end {
		return nil, nil
	}
	rows := make([]T, 0, end-start)
	ids := make([]string, 0, end-start)
	for _, idx := range c.order[start:end] {
		rows = append(rows, c.rows[idx])
		ids = append(ids, c.ids[idx])
	}
	return rows, ids
}

func (c *Controller[T]) ToggleSelect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Toggle(id)
}

func (c *Controller[T]) SelectAll(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.SetAll(ids)
}

func (c *Controller[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Clear()
}

func (c *Controller[T]) IsSelected(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel.IsSelected(id)
}

func (c *Controller[T]) SelectedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel.IDs()
}

func (c *Controller[T]) SelectedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel.Count()
}

// PruneSelection drops selected ids no longer present in the dataset.
// Explicit by design: selection must survive transient filters and data
// swaps until the caller decides otherwise.
func (c *Controller[T]) PruneSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	present := make(map[string]struct{}, len(c.ids))
	for _, id := range c.ids {
		present[id] = struct{}{}
	}
	c.sel.Prune(func(id string) bool {
		_, ok := present[id]
		return ok
	})
}

// SelectedViewRows returns the selected rows restricted to the current
// filtered view, in view order. This is the export scope for "selected".
func (c *Controller[T]) SelectedViewRows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deriveLocked()
	var out []T
	for _, idx := range c.order {
		if c.sel.IsSelected(c.ids[idx]) {
			out = append(out, c.rows[idx])
		}
	}
	return out
}

// SelectedRows returns the selected row objects in dataset order,
// regardless of the current filter.
func (c *Controller[T]) SelectedRows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []T
	for i, id := range c.ids {
		if c.sel.IsSelected(id) {
			out = append(out, c.rows[i])
		}
	}
	return out
}

// Batch hands the currently selected row objects to a bulk-action
// collaborator. The engine performs no action itself.
func (c *Controller[T]) Batch(actionID string, fn func(actionID string, rows []T)) {
	if fn == nil {
		return
	}
	fn(actionID, c.SelectedRows())
}

// State is the persistable slice of controller state. Selection is
// session-scoped and intentionally absent.
type State struct {
	Sort   SortSpec
	Filter FilterState
	Page   Pagination
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	spec := make(SortSpec, len(c.sortSpec))
	copy(spec, c.sortSpec)
	return State{Sort: spec, Filter: c.filter.clone(), Page: c.page}
}

// Restore replaces sort, filter, and pagination in one transition. Stale
// column ids inside the restored state are tolerated; they are skipped at
// evaluation time like any other invalid reference.
func (c *Controller[T]) Restore(s State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var expr ExprMatcher
	if s.Filter.Expression != "" {
		if c.compile == nil {
			return fmt.Errorf("expression filters are not enabled")
		}
		m, err := c.compile(s.Filter.Expression)
		if err != nil {
			return err
		}
		expr = m
	}
	spec := make(SortSpec, len(s.Sort))
	copy(spec, s.Sort)
	c.sortSpec = spec
	c.filter = s.Filter.clone()
	if c.filter.PerColumn == nil {
		c.filter.PerColumn = map[string]string{}
	}
	c.expr = expr
	c.page = s.Page
	if c.page.PageIndex < 0 {
		c.page.PageIndex = 0
	}
	if c.page.PageSize <= 0 {
		c.page.PageSize = 50
	}
	c.dirty = true
	return nil
}
