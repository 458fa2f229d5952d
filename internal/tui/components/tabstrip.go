package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tabgrid/internal/catalog"
	"github.com/hy4ri/tabgrid/internal/tui/state"
	"github.com/hy4ri/tabgrid/internal/tui/styles"
)

const (
	// DefaultTabWidth is the width of one tab in cells.
	DefaultTabWidth = 14

	// TabStripHeight is the rendered height: icon, title, underline and
	// the bottom border.
	TabStripHeight = 4

	// markerWidth is reserved on each side for the overflow markers.
	markerWidth = 1
)

// TabStripModel renders one fixed-width tab per descriptor and reports taps
// and tab keys as TabSelectedMsg. It never changes its own selection; the
// owner applies the selection and calls SetSelected.
type TabStripModel struct {
	tabs     []catalog.TabDescriptor
	selected int
	first    int // first visible tab
	width    int
	tabWidth int
	keymap   state.KeymapData

	selectionColor  string
	titleColor      string
	backgroundColor string
}

// NewTabStrip creates a strip with one tab per descriptor.
func NewTabStrip(tabs []catalog.TabDescriptor, km state.KeymapData) *TabStripModel {
	t := make([]catalog.TabDescriptor, len(tabs))
	copy(t, tabs)
	return &TabStripModel{
		tabs:     t,
		tabWidth: DefaultTabWidth,
		keymap:   km,
	}
}

// Init implements Component.
func (t *TabStripModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Mouse coordinates are relative to the strip.
func (t *TabStripModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t, t.handleKeyMsg(msg)
	case tea.MouseMsg:
		return t, t.handleMouseMsg(msg)
	}
	return t, nil
}

func (t *TabStripModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	n := len(t.tabs)
	if n == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, t.keymap.NextTab):
		return t.request((t.selected + 1) % n)
	case key.Matches(msg, t.keymap.PrevTab):
		return t.request((t.selected - 1 + n) % n)
	case key.Matches(msg, t.keymap.JumpTab):
		if idx, ok := state.JumpTabIndex(msg); ok && idx < n {
			return t.request(idx)
		}
	}
	return nil
}

func (t *TabStripModel) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		t.scrollBy(-1)
		return nil
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		t.scrollBy(1)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if idx, ok := t.HitTest(msg.X, msg.Y); ok {
		return t.request(idx)
	}
	return nil
}

// request asks the owner to select index. Re-selecting the current tab is
// still reported so it can retry a failed reload.
func (t *TabStripModel) request(index int) tea.Cmd {
	return func() tea.Msg {
		return TabSelectedMsg{Index: index}
	}
}

// HitTest returns the tab under (x, y), relative to the strip.
func (t *TabStripModel) HitTest(x, y int) (int, bool) {
	if y < 0 || y >= TabStripHeight-1 {
		return 0, false
	}
	x -= markerWidth
	if x < 0 {
		return 0, false
	}
	slot := x / t.tabWidth
	if slot >= t.visibleCount() {
		return 0, false
	}
	idx := t.first + slot
	if idx >= len(t.tabs) {
		return 0, false
	}
	return idx, true
}

// SetSelected moves the selection highlight and scrolls the tab into view.
// Out of range indexes are ignored.
func (t *TabStripModel) SetSelected(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	t.selected = index
	t.ensureVisible()
}

// Selected returns the highlighted tab.
func (t *TabStripModel) Selected() int {
	return t.selected
}

// SetTabs replaces the descriptors and resets the selection.
func (t *TabStripModel) SetTabs(tabs []catalog.TabDescriptor) {
	t.tabs = make([]catalog.TabDescriptor, len(tabs))
	copy(t.tabs, tabs)
	t.selected = 0
	t.first = 0
}

// SetColors sets the palette. Empty values fall back to the theme.
func (t *TabStripModel) SetColors(selection, title, background string) {
	t.selectionColor = selection
	t.titleColor = title
	t.backgroundColor = background
}

// SetTabWidth changes the width of every tab.
func (t *TabStripModel) SetTabWidth(w int) {
	if w < 3 {
		w = 3
	}
	t.tabWidth = w
	t.ensureVisible()
}

// SetSize implements Component. The strip height is fixed.
func (t *TabStripModel) SetSize(width, _ int) {
	t.width = width
	t.ensureVisible()
}

// Height returns the rendered height of the strip.
func (t *TabStripModel) Height() int {
	return TabStripHeight
}

func (t *TabStripModel) visibleCount() int {
	n := (t.width - 2*markerWidth) / t.tabWidth
	if n < 1 {
		n = 1
	}
	return n
}

func (t *TabStripModel) ensureVisible() {
	visible := t.visibleCount()
	if t.selected < t.first {
		t.first = t.selected
	}
	if t.selected >= t.first+visible {
		t.first = t.selected - visible + 1
	}
	t.clampFirst()
}

func (t *TabStripModel) scrollBy(delta int) {
	t.first += delta
	t.clampFirst()
}

func (t *TabStripModel) clampFirst() {
	maxFirst := len(t.tabs) - t.visibleCount()
	if t.first > maxFirst {
		t.first = maxFirst
	}
	if t.first < 0 {
		t.first = 0
	}
}

// View implements Component.
func (t *TabStripModel) View() string {
	if len(t.tabs) == 0 {
		return styles.TabStrip.Width(max(t.width, 1)).Render(styles.TabScrollMarker.Render("no tabs") + "\n\n")
	}

	end := t.first + t.visibleCount()
	if end > len(t.tabs) {
		end = len(t.tabs)
	}

	left, right := " ", " "
	if t.first > 0 {
		left = "‹"
	}
	if end < len(t.tabs) {
		right = "›"
	}
	leftCol := styles.TabScrollMarker.Render(strings.Repeat(left+"\n", TabStripHeight-2) + left)
	rightCol := styles.TabScrollMarker.Render(strings.Repeat(right+"\n", TabStripHeight-2) + right)

	cols := []string{leftCol}
	for i := t.first; i < end; i++ {
		cols = append(cols, t.renderTab(i))
	}
	cols = append(cols, rightCol)

	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if t.width > 0 {
		return styles.TabStrip.Width(t.width).Render(row)
	}
	return styles.TabStrip.Render(row)
}

func (t *TabStripModel) renderTab(i int) string {
	tab := t.tabs[i]
	inner := t.tabWidth - 2
	selected := i == t.selected

	style := styles.Tab
	if t.titleColor != "" {
		style = style.Foreground(lipgloss.Color(t.titleColor))
	}
	if selected {
		style = styles.TabSelected.Foreground(styles.Color(t.titleColor, styles.Highlight))
		if t.backgroundColor != "" {
			style = style.Background(styles.Darken(t.backgroundColor, 0.12))
		}
	}
	style = style.Width(t.tabWidth)

	iconStyle := style
	if tab.AccentColor != "" {
		iconStyle = iconStyle.Foreground(lipgloss.Color(tab.AccentColor))
	}

	underline := strings.Repeat(" ", inner)
	if selected {
		underline = lipgloss.NewStyle().
			Foreground(styles.Color(t.selectionColor, styles.Highlight)).
			Render(strings.Repeat("━", inner))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		iconStyle.Render(center(tab.Icon, inner)),
		style.Render(center(tab.Title, inner)),
		style.Render(underline),
	)
}
