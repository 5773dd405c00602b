package grid

import "sort"

// Selection tracks selected row identities. It is keyed by identity, never
// by position, so it survives sorting and filtering untouched. Toggling an
// id that is not currently in the dataset is legal: a row hidden by a
// transient filter stays selected until it comes back.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: map[string]struct{}{}}
}

func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// SetAll adds every id of the caller-provided scope (typically the ids
// visible on the current page or window). It never means "everything in the
// universe"; bulk actions on filtered-out data must be deliberate.
func (s *Selection) SetAll(ids []string) {
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = map[string]struct{}{}
}

func (s *Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Count() int { return len(s.ids) }

// IDs returns the selected identities in lexical order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Prune drops ids not present in keep. It runs only on explicit request;
// selection is never pruned automatically on data or filter changes.
func (s *Selection) Prune(keep func(id string) bool) {
	for id := range s.ids {
		if !keep(id) {
			delete(s.ids, id)
		}
	}
}
