package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tabgrid/internal/tui/state"
	"github.com/hy4ri/tabgrid/internal/tui/styles"
)

func (a *App) View() string {
	if a.state.Width == 0 {
		return "Loading..."
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.strip.View(),
		a.renderGridArea(),
		a.renderDots(),
		a.renderStatusBar(),
	))
}

// renderGridArea draws the grid, or what stands in for it while the help is
// open or the selected tab has nothing to show.
func (a *App) renderGridArea() string {
	width, height := a.state.Width, a.gridHeight
	place := func(s string) string {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
	}

	if a.state.ShowHelp {
		return place(styles.Title.Render("Keys") + "\n\n" + a.help.View(a.handler.Keymap()))
	}

	switch a.state.Reload.Status {
	case state.ReloadLoading:
		title := ""
		if tab := a.state.Selection.SelectedTab; tab < a.state.TabCount() {
			title = a.state.Tabs[tab].Title
		}
		return place(a.spinner.View() + " Loading " + title + "...")
	case state.ReloadFailed:
		return place(styles.StatusBarError.Render(fmt.Sprintf("Failed to load: %v", a.state.Reload.Err)) +
			"\n" + styles.HelpDesc.Render("press r to retry"))
	}

	if a.state.TabCount() == 0 {
		return place(styles.EmptyGrid.Render("No tabs"))
	}
	if len(a.state.Items) == 0 {
		return place(styles.EmptyGrid.Render("Nothing here"))
	}
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(a.grid.View())
}

func (a *App) renderDots() string {
	dots := a.grid.DotsView()
	if dots == "" {
		return lipgloss.NewStyle().Width(a.state.Width).Render("")
	}
	return dots
}

// renderStatusBar shows the latest message on the left and the short help
// on the right.
func (a *App) renderStatusBar() string {
	var left string
	switch {
	case a.layoutErr != nil:
		left = styles.StatusBarError.Render(fmt.Sprintf("Window too small: %v", a.layoutErr))
	case a.state.StatusMsg != "":
		left = styles.StatusBarSuccess.Render(a.state.StatusMsg)
	}

	right := ""
	if !a.state.ShowHelp {
		right = a.help.ShortHelpView(a.handler.Keymap().ShortHelp())
	}

	gap := a.state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.StatusBar.MaxWidth(a.state.Width).Render(left)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}
