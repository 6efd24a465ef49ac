package badges

// NewlyEarned returns the catalog badges whose threshold proficiency
// reaches and that are not already in existing, in catalog order.
// It never removes anything: a badge already earned stays earned no
// matter how low proficiency falls.
func NewlyEarned(catalog Catalog, proficiency float64, existing []string) []Badge {
	have := make(map[string]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}
	var earned []Badge
	for _, b := range catalog {
		if proficiency >= b.Threshold && !have[b.ID] {
			earned = append(earned, b)
		}
	}
	return earned
}

// Set is an insertion-ordered set of earned badge IDs. It only grows;
// the owner replaces it wholesale on a progress reset.
type Set struct {
	ids  []string
	seen map[string]bool
}

// NewSet returns a set holding ids, skipping duplicates.
func NewSet(ids ...string) *Set {
	s := &Set{seen: make(map[string]bool, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was new.
func (s *Set) Add(id string) bool {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[id] {
		return false
	}
	s.seen[id] = true
	s.ids = append(s.ids, id)
	return true
}

// Has reports whether id has been earned.
func (s *Set) Has(id string) bool {
	return s.seen[id]
}

// IDs returns the earned IDs in the order they were earned.
func (s *Set) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Len returns the number of earned badges.
func (s *Set) Len() int {
	return len(s.ids)
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return NewSet(s.ids...)
}
