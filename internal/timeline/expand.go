package timeline

// ExpandState maps group IDs to their expanded flag. Groups without an entry
// are expanded. The zero value (nil) is valid and means all expanded.
type ExpandState map[string]bool

// IsExpanded reports the flag for groupID, defaulting to true.
func (s ExpandState) IsExpanded(groupID string) bool {
	v, ok := s[groupID]
	return !ok || v
}

// Toggle returns a copy of s with groupID flipped. s is left untouched.
func (s ExpandState) Toggle(groupID string) ExpandState {
	next := s.Clone()
	next[groupID] = !s.IsExpanded(groupID)
	return next
}

// Clone returns an independent copy of s.
func (s ExpandState) Clone() ExpandState {
	next := make(ExpandState, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	return next
}

// Collapsed returns the IDs explicitly collapsed.
func (s ExpandState) Collapsed() []string {
	var ids []string
	for id, expanded := range s {
		if !expanded {
			ids = append(ids, id)
		}
	}
	return ids
}
