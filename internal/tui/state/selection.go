package state

import "github.com/hy4ri/tabgrid/internal/layout"

// ScrollPhase is the scroll-lock phase of the grid surface.
type ScrollPhase int

const (
	PhaseIdle         ScrollPhase = iota
	PhaseUserDragging             // pointer is down and moving the content
	PhaseSettling                 // released with momentum, still moving
)

// String implements fmt.Stringer.
func (p ScrollPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseUserDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// SelectionState is the selected tab plus the scroll lock of the grid.
//
// While idle, the grid content is pinned to LastSettled: offset changes that
// are not caused by the user are reverted. LastSettled is only committed when
// an interaction ends.
type SelectionState struct {
	SelectedTab int
	Phase       ScrollPhase
	Offset      layout.Point
	LastSettled layout.Point
}

// IsUserScrolling reports whether an interaction is in progress.
func (s *SelectionState) IsUserScrolling() bool {
	return s.Phase != PhaseIdle
}

// BeginDrag starts a user drag. A settling surface can be grabbed again.
func (s *SelectionState) BeginDrag() bool {
	if s.Phase == PhaseUserDragging {
		return false
	}
	s.Phase = PhaseUserDragging
	return true
}

// EndDrag ends a user drag. Without deceleration the current offset is
// committed immediately; with deceleration the surface starts settling.
func (s *SelectionState) EndDrag(decelerate bool) bool {
	if s.Phase != PhaseUserDragging {
		return false
	}
	if decelerate {
		s.Phase = PhaseSettling
		return true
	}
	s.Phase = PhaseIdle
	s.LastSettled = s.Offset
	return true
}

// EndDecelerate ends settling and commits the current offset.
func (s *SelectionState) EndDecelerate() bool {
	if s.Phase != PhaseSettling {
		return false
	}
	s.Phase = PhaseIdle
	s.LastSettled = s.Offset
	return true
}

// DidScroll applies an offset change notification. It returns true when the
// change was rejected and the offset was forced back to LastSettled.
func (s *SelectionState) DidScroll(offset layout.Point, byUser bool) bool {
	if s.Phase != PhaseIdle {
		s.Offset = offset
		return false
	}
	if byUser {
		s.Offset = offset
		s.LastSettled = offset
		return false
	}
	s.Offset = s.LastSettled
	return true
}

// ResetToOrigin moves the content and the settled offset back to the origin
// without touching the phase.
func (s *SelectionState) ResetToOrigin() {
	s.Offset = layout.Point{}
	s.LastSettled = layout.Point{}
}

// Reanchor replaces the settled offset, e.g. after a relayout moved page
// boundaries.
func (s *SelectionState) Reanchor(p layout.Point) {
	s.LastSettled = p
}
