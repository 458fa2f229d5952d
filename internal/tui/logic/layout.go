package logic

import (
	"github.com/hy4ri/tabgrid/internal/layout"
	"github.com/hy4ri/tabgrid/internal/logger"
	"github.com/hy4ri/tabgrid/internal/tui/state"
)

// SetViewportSize lays the grid out again for a new viewport. The data is
// not reloaded. An invalid size leaves the previous layout in effect.
func (h *Handler) SetViewportSize(size layout.Size) error {
	spec := h.Grid.Spec()
	spec.ViewportWidth = size.Width
	spec.ViewportHeight = size.Height
	return h.SetGridSpec(spec)
}

// SetCellSize lays the grid out again for a new cell size.
func (h *Handler) SetCellSize(size layout.Size) error {
	spec := h.Grid.Spec()
	spec.CellWidth = size.Width
	spec.CellHeight = size.Height
	return h.SetGridSpec(spec)
}

// SetGridSpec replaces cell and viewport size in one layout pass.
//
// The settled offset is re-anchored to the page that was showing, so the
// same page stays visible when page boundaries move.
func (h *Handler) SetGridSpec(spec layout.GridSpec) error {
	page := h.CurrentPage()
	targetPage := h.TargetPage()

	grid, err := layout.New(spec, len(h.Items))
	if err != nil {
		logger.Debugf("rejected grid spec %+v: %v", spec, err)
		return err
	}
	h.Grid = grid

	if h.Grid.PageCount() > 0 {
		if p, err := h.Grid.PositionFor(h.Cursor); err == nil {
			page = p.Page
			if h.Selection.Phase == state.PhaseSettling {
				targetPage = p.Page
			}
		}
	}

	h.Selection.Reanchor(h.Grid.PageOffset(page))

	switch h.Selection.Phase {
	case state.PhaseSettling:
		h.SettleTarget = h.Grid.PageOffset(targetPage)
		h.Selection.DidScroll(h.Grid.ClampOffset(h.Selection.Offset), false)
	case state.PhaseUserDragging:
		h.Selection.Offset = h.Grid.ClampOffset(h.Selection.Offset)
	default:
		// Relayout moves the content without user involvement; the scroll
		// lock pins it to the re-anchored offset.
		h.Selection.DidScroll(h.Grid.ClampOffset(h.Selection.Offset), false)
	}
	return nil
}
