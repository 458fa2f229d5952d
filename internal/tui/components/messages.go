package components

// TabSelectedMsg is emitted when the tab strip asks for a different tab.
// The strip does not change its own selection; the controller answers with
// SetSelected once the selection has been applied.
type TabSelectedMsg struct {
	Index int
}
