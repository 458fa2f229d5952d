package logic

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/logger"
)

// MoveCursor moves the grid cursor by whole columns and rows. Moving past the
// left or right edge of a page continues on the neighbouring page, which is
// scrolled into view.
func (h *Handler) MoveCursor(dx, dy int) tea.Cmd {
	count := len(h.Items)
	if count == 0 {
		return nil
	}

	pos, err := h.Grid.PositionFor(h.Cursor)
	if err != nil {
		h.Cursor = 0
		return nil
	}

	cols, rows, pages := h.Grid.ColumnsPerPage(), h.Grid.RowsPerPage(), h.Grid.PageCount()
	page, col, row := pos.Page, pos.Column+dx, pos.Row+dy

	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}
	if col < 0 {
		if page > 0 {
			page--
			col = cols - 1
		} else {
			col = 0
		}
	}
	if col >= cols {
		if page < pages-1 {
			page++
			col = 0
		} else {
			col = cols - 1
		}
	}

	index := page*h.Grid.ItemsPerPage() + row*cols + col
	if index >= count {
		index = count - 1
	}
	h.Cursor = index

	// Clamping may have landed on another page.
	if p, err := h.Grid.PositionFor(index); err == nil {
		page = p.Page
	}
	if page != h.TargetPage() {
		return h.ScrollToPage(page)
	}
	return nil
}

// moveCursorToPage keeps the cursor's slot when switching pages, clamped to
// the items of the new page.
func (h *Handler) moveCursorToPage(page int) {
	count := len(h.Items)
	if count == 0 {
		h.Cursor = 0
		return
	}
	per := h.Grid.ItemsPerPage()
	index := page*per + h.Cursor%per
	if index >= count {
		index = count - 1
	}
	if index < 0 {
		index = 0
	}
	h.Cursor = index
}

// ActivateItem selects item index of the current tab: the cursor moves to it,
// the host callback fires and an ItemSelectedMsg is emitted.
func (h *Handler) ActivateItem(index int) (tea.Cmd, error) {
	if _, err := h.Grid.AttributesFor(index); err != nil {
		return nil, err
	}

	tab := h.Selection.SelectedTab
	content := h.Items[index]
	h.Cursor = index
	logger.Debugf("item %d of tab %d selected", index, tab)

	if h.onItemSelected != nil {
		h.onItemSelected(index, tab)
	}

	cmds := []tea.Cmd{func() tea.Msg {
		return ItemSelectedMsg{Item: index, Tab: tab, Content: content}
	}}
	if h.notify {
		cmds = append(cmds, h.notifyItemCmd(tab, content.Title))
	}
	return tea.Batch(cmds...), nil
}

// CopyCurrent copies the title of the item under the cursor to the clipboard.
func (h *Handler) CopyCurrent() tea.Cmd {
	item, ok := h.CurrentItem()
	if !ok {
		return nil
	}
	copyText := h.copyText
	title := item.Title
	return func() tea.Msg {
		if err := copyText(title); err != nil {
			return statusMsg{msg: fmt.Sprintf("Copy failed: %v", err)}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %q", title)}
	}
}
