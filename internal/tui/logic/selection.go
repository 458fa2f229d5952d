package logic

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/catalog"
	"github.com/hy4ri/tabgrid/internal/layout"
	"github.com/hy4ri/tabgrid/internal/logger"
	"github.com/hy4ri/tabgrid/internal/tui/state"
)

// SelectTab makes index the selected tab, scrolls the grid back to the origin
// and reloads the grid from the data source. The scroll phase is left alone;
// a running settle is retargeted to the origin.
func (h *Handler) SelectTab(index int) (tea.Cmd, error) {
	if index < 0 || index >= h.TabCount() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrTabIndexOutOfRange, index, h.TabCount())
	}

	h.Selection.SelectedTab = index
	h.Selection.ResetToOrigin()
	if h.Selection.Phase == state.PhaseSettling {
		h.SettleTarget = layout.Point{}
	}
	h.Cursor = 0
	h.StatusMsg = ""

	return h.reload(), nil
}

// reload discards the committed items and requests the selected tab again.
func (h *Handler) reload() tea.Cmd {
	h.Reload.Generation++
	h.Reload.Tab = h.Selection.SelectedTab
	h.Reload.Status = state.ReloadLoading
	h.Reload.Err = nil

	h.Items = nil
	if grid, err := h.Grid.WithItemCount(0); err == nil {
		h.Grid = grid
	}

	logger.Debugf("reload tab %d (generation %d)", h.Reload.Tab, h.Reload.Generation)
	return loadTabCmd(h.source, h.Reload.Generation, h.Reload.Tab)
}

// loadTabCmd queries the data source for every item of tab.
func loadTabCmd(src ItemDataSource, generation uint64, tab int) tea.Cmd {
	return func() tea.Msg {
		count, err := src.ItemCount(tab)
		if err != nil {
			return TabLoadedMsg{Generation: generation, Tab: tab, Err: fmt.Errorf("failed to count items: %w", err)}
		}

		if count < 0 {
			return TabLoadedMsg{Generation: generation, Tab: tab, Err: fmt.Errorf("%w: %d", layout.ErrInvalidItemCount, count)}
		}

		items := make([]catalog.ItemContent, 0, count)
		for i := 0; i < count; i++ {
			content, err := src.ItemContent(tab, i)
			if err != nil {
				return TabLoadedMsg{Generation: generation, Tab: tab, Err: fmt.Errorf("failed to load item %d: %w", i, err)}
			}
			items = append(items, content)
		}
		return TabLoadedMsg{Generation: generation, Tab: tab, Items: items}
	}
}

// HandleTabLoaded commits a reload response. It returns false when the
// response belongs to a superseded request.
func (h *Handler) HandleTabLoaded(msg TabLoadedMsg) bool {
	if msg.Generation != h.Reload.Generation {
		logger.Debugf("dropping stale reload of tab %d (generation %d, current %d)",
			msg.Tab, msg.Generation, h.Reload.Generation)
		return false
	}

	if msg.Err != nil {
		h.failReload(msg.Err)
		return true
	}

	grid, err := h.Grid.WithItemCount(len(msg.Items))
	if err != nil {
		h.failReload(err)
		return true
	}

	h.Items = msg.Items
	h.Grid = grid
	h.Reload.Status = state.ReloadReady
	h.Reload.Err = nil
	h.Err = nil
	if h.Cursor >= len(h.Items) {
		h.Cursor = 0
	}

	// The reload is not a user scroll: while idle this pins the content to
	// the settled offset.
	h.Selection.DidScroll(h.Grid.ClampOffset(h.Selection.Offset), false)
	return true
}

func (h *Handler) failReload(err error) {
	logger.Printf("reload of tab %d failed: %v", h.Reload.Tab, err)
	h.Reload.Status = state.ReloadFailed
	h.Reload.Err = err
	h.Err = err
}

// ReloadTab re-selects the current tab. This is how a failed reload is retried.
func (h *Handler) ReloadTab() tea.Cmd {
	cmd, err := h.SelectTab(h.Selection.SelectedTab)
	if err != nil {
		h.StatusMsg = err.Error()
		return nil
	}
	return cmd
}
