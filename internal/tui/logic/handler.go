// Package logic implements the tabbed grid controller: tab selection, data
// reloads, the grid layout and the scroll lock of the grid surface.
package logic

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/catalog"
	"github.com/hy4ri/tabgrid/internal/layout"
	"github.com/hy4ri/tabgrid/internal/tui/components"
	"github.com/hy4ri/tabgrid/internal/tui/state"
)

// ErrTabIndexOutOfRange is returned by SelectTab for an index outside
// [0, tabCount).
var ErrTabIndexOutOfRange = errors.New("tab index out of range")

// ItemDataSource supplies the items of each tab.
//
// It may be queried at any time after a tab selection. Calls run inside a
// tea.Cmd, off the event loop, so a slow source only delays the reload.
type ItemDataSource interface {
	ItemCount(tab int) (int, error)
	ItemContent(tab, item int) (catalog.ItemContent, error)
}

// DefaultSettleInterval is the frame interval of the settle animation.
const DefaultSettleInterval = 16 * time.Millisecond

// Handler is the tabbed grid controller. It owns the selection state and
// is the only writer of it.
type Handler struct {
	*state.State

	source   ItemDataSource
	keymap   state.KeymapData
	keyState state.KeyState

	onItemSelected func(item, tab int)
	notify         bool
	copyText       func(string) error
	settleInterval time.Duration

	// Pointer tracking for grid drags
	lastPointerX int
	pointerMoved bool
	velocity     int
}

// Option configures a Handler.
type Option func(*Handler)

// WithItemSelected registers the host callback fired when a grid item is
// activated.
func WithItemSelected(fn func(item, tab int)) Option {
	return func(h *Handler) { h.onItemSelected = fn }
}

// WithNotifications sends a desktop notification when an item is activated.
func WithNotifications(enabled bool) Option {
	return func(h *Handler) { h.notify = enabled }
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(h *Handler) { h.copyText = fn }
}

// WithSettleInterval overrides the settle animation frame interval.
func WithSettleInterval(d time.Duration) Option {
	return func(h *Handler) { h.settleInterval = d }
}

// WithKeymap overrides the key bindings.
func WithKeymap(km state.KeymapData) Option {
	return func(h *Handler) { h.keymap = km }
}

// NewHandler creates a controller with tab 0 selected and an empty grid laid
// out under spec. Call Init to load the first tab.
func NewHandler(s *state.State, source ItemDataSource, spec layout.GridSpec, opts ...Option) (*Handler, error) {
	if source == nil {
		return nil, errors.New("nil item data source")
	}

	grid, err := layout.New(spec, 0)
	if err != nil {
		return nil, err
	}

	s.Grid = grid
	s.Items = nil
	s.Cursor = 0
	s.Selection = state.SelectionState{}
	s.Reload = state.ReloadState{}

	h := &Handler{
		State:          s,
		source:         source,
		keymap:         state.DefaultKeymap(),
		copyText:       clipboard.WriteAll,
		settleInterval: DefaultSettleInterval,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Init loads the initially selected tab.
func (h *Handler) Init() tea.Cmd {
	if h.TabCount() == 0 {
		return nil
	}
	return h.reload()
}

// Keymap returns the active key bindings.
func (h *Handler) Keymap() state.KeymapData {
	return h.keymap
}

// Update handles the controller's own messages.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case components.TabSelectedMsg:
		cmd, err := h.SelectTab(msg.Index)
		if err != nil {
			h.StatusMsg = err.Error()
			return nil
		}
		return cmd

	case TabLoadedMsg:
		h.HandleTabLoaded(msg)
		return nil

	case SettleTickMsg:
		return h.handleSettleTick(msg)

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil
	}
	return nil
}
