package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/layout"
	"github.com/hy4ri/tabgrid/internal/tui/state"
)

// handleKeyMsg processes keyboard input for the grid. Tab switching keys are
// handled by the tab strip.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	action, ok := h.keyState.HandleKey(msg, h.keymap)
	if !ok {
		return nil
	}

	switch action {
	case state.ActionQuit:
		return tea.Quit
	case state.ActionHelp:
		h.ShowHelp = !h.ShowHelp
	case state.ActionUp:
		return h.MoveCursor(0, -1)
	case state.ActionDown:
		return h.MoveCursor(0, 1)
	case state.ActionLeft:
		return h.MoveCursor(-1, 0)
	case state.ActionRight:
		return h.MoveCursor(1, 0)
	case state.ActionPrevPage:
		return h.PrevPage()
	case state.ActionNextPage:
		return h.NextPage()
	case state.ActionFirstPage:
		return h.pageTo(0)
	case state.ActionLastPage:
		return h.pageTo(h.Grid.PageCount() - 1)
	case state.ActionSelect:
		if len(h.Items) == 0 {
			return nil
		}
		cmd, err := h.ActivateItem(h.Cursor)
		if err != nil {
			h.StatusMsg = err.Error()
			return nil
		}
		return cmd
	case state.ActionCopy:
		return h.CopyCurrent()
	case state.ActionReload:
		return h.ReloadTab()
	}
	return nil
}

func (h *Handler) pageTo(page int) tea.Cmd {
	if page < 0 || page >= h.Grid.PageCount() || page == h.TargetPage() {
		return nil
	}
	h.moveCursorToPage(page)
	return h.ScrollToPage(page)
}

// HandleGridMouse processes a mouse event at (x, y) relative to the top-left
// corner of the grid viewport. A press and release without movement is a
// tap on the item under the pointer.
func (h *Handler) HandleGridMouse(x, y int, msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			return h.NextPage()
		}
		return nil
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			return h.PrevPage()
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if h.BeginDrag() {
			h.lastPointerX = x
			h.pointerMoved = false
		}

	case tea.MouseActionMotion:
		if h.Selection.Phase != state.PhaseUserDragging {
			return nil
		}
		dx := x - h.lastPointerX
		h.lastPointerX = x
		if dx != 0 {
			h.pointerMoved = true
			h.DragBy(dx)
		}

	case tea.MouseActionRelease:
		if h.Selection.Phase != state.PhaseUserDragging {
			return nil
		}
		if h.pointerMoved {
			return h.EndDrag(h.velocity != 0)
		}

		h.EndDrag(false)
		point := layout.Point{X: h.Selection.Offset.X + x, Y: y}
		index, ok := h.Grid.IndexAt(point)
		if !ok {
			return nil
		}
		cmd, err := h.ActivateItem(index)
		if err != nil {
			h.StatusMsg = err.Error()
			return nil
		}
		return cmd
	}
	return nil
}
