package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hy4ri/tabgrid/internal/catalog"
	"github.com/hy4ri/tabgrid/internal/layout"
	"github.com/hy4ri/tabgrid/internal/tui/state"
	"github.com/hy4ri/tabgrid/internal/tui/styles"
)

// cellCacheSize bounds the number of rendered cell fragments kept around.
const cellCacheSize = 512

// GridInput receives pointer events that land on the grid viewport.
type GridInput interface {
	HandleGridMouse(x, y int, msg tea.MouseMsg) tea.Cmd
}

type cellKey struct {
	index    int
	width    int
	height   int
	from, to int
	cursor   bool
}

// PageGridModel draws the part of the paged content that lies under the
// viewport at the current scroll offset. Cells that straddle a viewport edge
// are clipped.
type PageGridModel struct {
	state *state.State
	input GridInput

	width, height  int
	selectionColor string

	cache      *lru.Cache[cellKey, []string]
	generation uint64
}

// NewPageGrid creates a grid view over s. Mouse events are passed to input.
func NewPageGrid(s *state.State, input GridInput) *PageGridModel {
	cache, err := lru.New[cellKey, []string](cellCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return &PageGridModel{
		state: s,
		input: input,
		cache: cache,
	}
}

// Init implements Component.
func (g *PageGridModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Mouse coordinates are relative to the
// viewport.
func (g *PageGridModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok && g.input != nil {
		return g, g.input.HandleGridMouse(msg.X, msg.Y, msg)
	}
	return g, nil
}

// SetSize implements Component.
func (g *PageGridModel) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// SetSelectionColor sets the color of the cursor cell.
func (g *PageGridModel) SetSelectionColor(color string) {
	if color != g.selectionColor {
		g.cache.Purge()
	}
	g.selectionColor = color
}

// Invalidate drops every cached cell.
func (g *PageGridModel) Invalidate() {
	g.cache.Purge()
}

// View implements Component.
func (g *PageGridModel) View() string {
	s := g.state
	spec := s.Grid.Spec()
	vw, vh := spec.ViewportWidth, spec.ViewportHeight
	if vw <= 0 || vh <= 0 {
		return ""
	}

	if s.Reload.Generation != g.generation {
		g.cache.Purge()
		g.generation = s.Reload.Generation
	}

	off := s.Selection.Offset.X
	visible := s.Grid.AttributesForVisible(layout.Rect{X: off, Y: 0, Width: vw, Height: vh})

	lines := make([]strings.Builder, vh)
	filled := make([]int, vh)
	for _, attr := range visible {
		if attr.Index >= len(s.Items) {
			continue
		}
		f := attr.Frame
		from := max(f.X, off) - f.X
		to := min(f.MaxX(), off+vw) - f.X
		if to <= from {
			continue
		}

		screenX := f.X + from - off
		for dy, line := range g.cell(attr.Index, f.Width, f.Height, from, to) {
			y := f.Y + dy
			if y < 0 || y >= vh {
				continue
			}
			if pad := screenX - filled[y]; pad > 0 {
				lines[y].WriteString(strings.Repeat(" ", pad))
			}
			lines[y].WriteString(line)
			filled[y] = screenX + to - from
		}
	}

	out := make([]string, vh)
	for y := range lines {
		if pad := vw - filled[y]; pad > 0 {
			lines[y].WriteString(strings.Repeat(" ", pad))
		}
		out[y] = lines[y].String()
	}
	return strings.Join(out, "\n")
}

// cell returns the visible columns [from, to) of item index, one string per
// line of the cell.
func (g *PageGridModel) cell(index, width, height, from, to int) []string {
	key := cellKey{
		index:  index,
		width:  width,
		height: height,
		from:   from,
		to:     to,
		cursor: index == g.state.Cursor,
	}
	if lines, ok := g.cache.Get(key); ok {
		return lines
	}
	lines := g.renderCell(g.state.Items[index], key)
	g.cache.Add(key, lines)
	return lines
}

func (g *PageGridModel) renderCell(item catalog.ItemContent, k cellKey) []string {
	gutter := 0
	if k.width >= 3 {
		gutter = 1
	}
	inner := k.width - 2*gutter

	body := styles.Cell
	if item.BackgroundColor != "" {
		body = body.Background(lipgloss.Color(item.BackgroundColor))
	}
	if k.cursor {
		body = body.Background(styles.Color(g.selectionColor, styles.Highlight)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}
	titleStyle := body
	if item.TitleColor != "" && !k.cursor {
		titleStyle = titleStyle.Foreground(lipgloss.Color(item.TitleColor))
	}
	iconStyle := body.Inherit(styles.CellIcon)
	if item.AccentColor != "" {
		iconStyle = iconStyle.Foreground(lipgloss.Color(item.AccentColor))
	}

	iconRow, titleRow := -1, 0
	switch {
	case k.height >= 3:
		iconRow = (k.height - 2) / 2
		titleRow = iconRow + 1
	case k.height == 2:
		iconRow, titleRow = 0, 1
	}

	lines := make([]string, k.height)
	for row := range lines {
		text, style := "", body
		switch row {
		case iconRow:
			text, style = item.Icon, iconStyle
		case titleRow:
			text, style = item.Title, titleStyle
		}

		var b strings.Builder
		// Left gutter, body and right gutter, each clipped to [from, to).
		segments := []struct {
			start, end int
			text       string
			style      *lipgloss.Style
		}{
			{0, gutter, " ", nil},
			{gutter, gutter + inner, center(text, inner), &style},
			{gutter + inner, k.width, " ", nil},
		}
		for _, seg := range segments {
			lo, hi := max(seg.start, k.from), min(seg.end, k.to)
			if hi <= lo {
				continue
			}
			part := cutColumns(seg.text, lo-seg.start, hi-seg.start)
			if seg.style != nil {
				part = seg.style.Render(part)
			}
			b.WriteString(part)
		}
		lines[row] = b.String()
	}
	return lines
}

// DotsView renders the page indicator for the current page.
func (g *PageGridModel) DotsView() string {
	s := g.state
	pages := s.Grid.PageCount()
	if pages <= 1 {
		return ""
	}
	current := s.CurrentPage()

	var line string
	if pages*2-1 > g.width {
		line = styles.PageDotActive.Render(fmt.Sprintf("%d/%d", current+1, pages))
	} else {
		dots := make([]string, pages)
		for i := range dots {
			if i == current {
				dots[i] = styles.PageDotActive.Render("●")
			} else {
				dots[i] = styles.PageDot.Render("○")
			}
		}
		line = strings.Join(dots, " ")
	}
	return lipgloss.PlaceHorizontal(max(g.width, lipgloss.Width(line)), lipgloss.Center, line)
}
