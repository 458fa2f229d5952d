package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/layout"
	"github.com/hy4ri/tabgrid/internal/tui/state"
)

// BeginDrag starts a user drag of the grid content. Grabbing a settling
// surface stops the settle animation.
func (h *Handler) BeginDrag() bool {
	if !h.Selection.BeginDrag() {
		return false
	}
	h.SettleGeneration++
	h.velocity = 0
	return true
}

// DragBy moves the content by a pointer delta. Positive dx drags the content
// to the right, revealing earlier pages.
func (h *Handler) DragBy(dx int) {
	if h.Selection.Phase != state.PhaseUserDragging || dx == 0 {
		return
	}
	before := h.Selection.Offset
	next := h.Grid.ClampOffset(layout.Point{X: before.X - dx})
	h.Selection.DidScroll(next, true)
	h.velocity = next.X - before.X
}

// EndDrag releases the content. With deceleration the content settles on a
// page boundary in the direction of the last movement; without it the
// current offset is committed as is.
func (h *Handler) EndDrag(decelerate bool) tea.Cmd {
	if !h.Selection.EndDrag(decelerate) {
		return nil
	}
	if !decelerate {
		h.followPage()
		return nil
	}
	return h.startSettle(h.Grid.PageOffset(h.settlePage()))
}

// settlePage picks the page to settle on from the offset and the velocity of
// the last drag step.
func (h *Handler) settlePage() int {
	off := h.Selection.Offset.X
	page := h.Grid.PageAt(off)
	if h.velocity > 0 && off > h.Grid.PageOffset(page).X {
		page++
	}
	if h.velocity == 0 {
		page = h.Grid.NearestPage(off)
	}
	return page
}

// EndDecelerate ends settling and commits the offset.
func (h *Handler) EndDecelerate() bool {
	if !h.Selection.EndDecelerate() {
		return false
	}
	h.SettleGeneration++
	h.followPage()
	return true
}

// DidScroll forwards an offset change of the grid surface to the scroll
// lock. It reports whether the change was reverted.
func (h *Handler) DidScroll(offset layout.Point, byUser bool) bool {
	return h.Selection.DidScroll(h.Grid.ClampOffset(offset), byUser)
}

// ScrollToPage animates the content to page. It is ignored while the user
// is dragging.
func (h *Handler) ScrollToPage(page int) tea.Cmd {
	if h.Selection.Phase == state.PhaseUserDragging {
		return nil
	}
	if h.Grid.PageCount() == 0 {
		return nil
	}

	if h.Selection.Phase == state.PhaseIdle {
		h.Selection.BeginDrag()
		h.Selection.EndDrag(true)
	}
	return h.startSettle(h.Grid.PageOffset(page))
}

// NextPage scrolls one page to the right.
func (h *Handler) NextPage() tea.Cmd {
	return h.pageBy(1)
}

// PrevPage scrolls one page to the left.
func (h *Handler) PrevPage() tea.Cmd {
	return h.pageBy(-1)
}

func (h *Handler) pageBy(delta int) tea.Cmd {
	from := h.TargetPage()
	to := from + delta
	if to < 0 || to >= h.Grid.PageCount() {
		return nil
	}
	h.moveCursorToPage(to)
	return h.ScrollToPage(to)
}

// TargetPage is the page the content is showing or settling towards.
func (h *Handler) TargetPage() int {
	if h.Grid.PageCount() == 0 {
		return 0
	}
	if h.Selection.Phase == state.PhaseSettling {
		return h.Grid.PageAt(h.SettleTarget.X)
	}
	return h.CurrentPage()
}

func (h *Handler) startSettle(target layout.Point) tea.Cmd {
	h.SettleTarget = h.Grid.ClampOffset(target)
	h.SettleGeneration++
	return h.settleTick(h.SettleGeneration)
}

func (h *Handler) settleTick(generation uint64) tea.Cmd {
	return tea.Tick(h.settleInterval, func(time.Time) tea.Msg {
		return SettleTickMsg{Generation: generation}
	})
}

// handleSettleTick moves the content half of the remaining distance towards
// the settle target, at least one cell per frame.
func (h *Handler) handleSettleTick(msg SettleTickMsg) tea.Cmd {
	if msg.Generation != h.SettleGeneration || h.Selection.Phase != state.PhaseSettling {
		return nil
	}

	off := h.Selection.Offset
	remaining := h.SettleTarget.X - off.X
	if remaining != 0 {
		step := remaining / 2
		if step == 0 {
			step = remaining
		}
		h.Selection.DidScroll(layout.Point{X: off.X + step}, false)
	}

	if h.Selection.Offset.X == h.SettleTarget.X {
		h.EndDecelerate()
		return nil
	}
	return h.settleTick(msg.Generation)
}

// followPage moves the cursor onto the page being shown.
func (h *Handler) followPage() {
	if len(h.Items) == 0 {
		return
	}
	page := h.CurrentPage()
	if pos, err := h.Grid.PositionFor(h.Cursor); err == nil && pos.Page == page {
		return
	}
	h.moveCursorToPage(page)
}
