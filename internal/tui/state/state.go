package state

import (
	"github.com/hy4ri/tabgrid/internal/catalog"
	"github.com/hy4ri/tabgrid/internal/layout"
)

// ReloadStatus tracks the grid data of the selected tab.
type ReloadStatus int

const (
	ReloadIdle ReloadStatus = iota
	ReloadLoading
	ReloadReady
	ReloadFailed
)

// String implements fmt.Stringer.
func (s ReloadStatus) String() string {
	switch s {
	case ReloadIdle:
		return "idle"
	case ReloadLoading:
		return "loading"
	case ReloadReady:
		return "ready"
	case ReloadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReloadState describes the most recent reload request. Only a response
// carrying the current Generation may be committed.
type ReloadState struct {
	Generation uint64
	Tab        int
	Status     ReloadStatus
	Err        error
}

// InFlight reports whether a reload is waiting for its response.
func (r ReloadState) InFlight() bool {
	return r.Status == ReloadLoading
}

// State holds the widget state.
// All fields are exported to allow access from the logic and tui packages.
type State struct {
	// Tabs are read-only copies of the provider's descriptors.
	Tabs []catalog.TabDescriptor

	// Items is the committed content of the selected tab.
	Items []catalog.ItemContent
	Grid  layout.PageGrid

	Selection SelectionState
	Reload    ReloadState

	// Grid cursor, an item index of the selected tab.
	Cursor int

	// Settle animation
	SettleTarget     layout.Point
	SettleGeneration uint64

	// UI state
	Width     int
	Height    int
	StatusMsg string
	Err       error
	ShowHelp  bool
}

// New creates a State with tab 0 selected.
func New(tabs []catalog.TabDescriptor) *State {
	copied := make([]catalog.TabDescriptor, len(tabs))
	copy(copied, tabs)
	return &State{Tabs: copied}
}

// TabCount returns the number of tabs.
func (s *State) TabCount() int {
	return len(s.Tabs)
}

// CurrentPage returns the page shown at the current offset.
func (s *State) CurrentPage() int {
	if s.Grid.PageCount() == 0 {
		return 0
	}
	return s.Grid.PageAt(s.Selection.Offset.X)
}

// CurrentItem returns the item under the cursor.
func (s *State) CurrentItem() (catalog.ItemContent, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return catalog.ItemContent{}, false
	}
	return s.Items[s.Cursor], true
}
