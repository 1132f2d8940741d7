package timeline

// ViewState is the caller-owned presentation state: which groups are
// expanded and which zoom is active. Methods return new values.
type ViewState struct {
	Expanded ExpandState `json:"expanded,omitempty"`
	Zoom     ZoomLevel   `json:"zoom"`
}

// NewViewState returns a state with every group expanded at zoom. An invalid
// zoom falls back to weekly.
func NewViewState(zoom ZoomLevel) ViewState {
	if !zoom.IsValid() {
		zoom = ZoomWeekly
	}
	return ViewState{Expanded: ExpandState{}, Zoom: zoom}
}

// ToggleGroup flips the expanded flag of groupID.
func (v ViewState) ToggleGroup(groupID string) ViewState {
	v.Expanded = v.Expanded.Toggle(groupID)
	return v
}

// SetZoom switches the zoom level. Invalid levels leave v unchanged.
func (v ViewState) SetZoom(zoom ZoomLevel) ViewState {
	if zoom.IsValid() {
		v.Zoom = zoom
	}
	return v
}

// Reset expands every group again and keeps the zoom level. It is applied on
// a full data reload.
func (v ViewState) Reset() ViewState {
	return NewViewState(v.Zoom)
}
