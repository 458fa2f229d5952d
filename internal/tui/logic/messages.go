package logic

import "github.com/hy4ri/tabgrid/internal/catalog"

// TabLoadedMsg carries the response of a reload. Generation identifies the
// request; responses to superseded requests are dropped.
type TabLoadedMsg struct {
	Generation uint64
	Tab        int
	Items      []catalog.ItemContent
	Err        error
}

// SettleTickMsg advances the settle animation.
type SettleTickMsg struct {
	Generation uint64
}

// ItemSelectedMsg is emitted when a grid item is activated.
type ItemSelectedMsg struct {
	Item    int
	Tab     int
	Content catalog.ItemContent
}

type statusMsg struct {
	msg string
}
