package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/layout"
	"github.com/hy4ri/tabgrid/internal/logger"
	"github.com/hy4ri/tabgrid/internal/tui/components"
	"github.com/hy4ri/tabgrid/internal/tui/logic"
	"github.com/hy4ri/tabgrid/internal/tui/state"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a, a.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case components.TabSelectedMsg:
		cmd := a.handler.Update(msg)
		a.strip.SetSelected(a.state.Selection.SelectedTab)
		return a, cmd

	case logic.ItemSelectedMsg:
		a.state.StatusMsg = fmt.Sprintf("Selected %s", msg.Content.Title)
		return a, nil
	}

	return a, a.handler.Update(msg)
}

// handleKeyMsg offers keys to the tab strip first; the rest drive the grid.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, cmd := a.strip.Update(msg); cmd != nil {
		return a, cmd
	}

	wasHelp := a.state.ShowHelp
	cmd := a.handler.Update(msg)
	if a.state.ShowHelp != wasHelp {
		a.help.ShowAll = a.state.ShowHelp
	}
	return a, cmd
}

// handleMouseMsg routes pointer events to the strip or the grid in their
// local coordinates. A drag keeps going to the grid when the pointer leaves
// it.
func (a *App) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	stripHeight := a.strip.Height()

	if a.state.Selection.Phase == state.PhaseUserDragging || a.inGrid(msg.Y) {
		local := msg
		local.Y -= stripHeight
		_, cmd := a.grid.Update(local)
		return cmd
	}

	if msg.Y < stripHeight {
		_, cmd := a.strip.Update(msg)
		return cmd
	}
	return nil
}

func (a *App) inGrid(y int) bool {
	top := a.strip.Height()
	return !a.state.ShowHelp && y >= top && y < top+a.gridHeight
}

// resize lays the grid out for a new terminal size.
func (a *App) resize(width, height int) {
	a.state.Width = width
	a.state.Height = height
	a.help.Width = width

	a.strip.SetSize(width, a.strip.Height())

	gridHeight := height - a.strip.Height() - dotsHeight - statusHeight
	if gridHeight < 1 {
		gridHeight = 1
	}
	a.gridHeight = gridHeight
	a.grid.SetSize(width, gridHeight)

	cw, ch := a.config.CellSize(width, gridHeight)
	spec := layout.NewGridSpec(
		layout.Size{Width: cw, Height: ch},
		layout.Size{Width: width, Height: gridHeight},
	)
	if err := a.handler.SetGridSpec(spec); err != nil {
		logger.Printf("layout for %dx%d rejected: %v", width, height, err)
		a.layoutErr = err
		return
	}
	a.layoutErr = nil
	a.grid.Invalidate()
}
