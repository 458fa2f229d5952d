package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/catalog"
	"github.com/hy4ri/tabgrid/internal/config"
	"github.com/hy4ri/tabgrid/internal/tui/logic"
	"github.com/hy4ri/tabgrid/internal/tui/state"
)

// testCatalog has tabs of the given sizes with items named "<tab>-<item>".
func testCatalog(t *testing.T, sizes ...int) *catalog.Catalog {
	t.Helper()
	var b strings.Builder
	b.WriteString("tabs:\n")
	for tab, n := range sizes {
		fmt.Fprintf(&b, "  - title: Tab%d\n    icon: \"*\"\n    items:\n", tab)
		if n == 0 {
			b.WriteString("      []\n")
		}
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "      - title: \"%d-%d\"\n", tab, i)
		}
	}
	cat, err := catalog.Parse([]byte(b.String()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cat
}

type failingSource struct{}

func (failingSource) ItemCount(int) (int, error) { return 0, errors.New("backend down") }
func (failingSource) ItemContent(int, int) (catalog.ItemContent, error) {
	return catalog.ItemContent{}, errors.New("backend down")
}

func newTestApp(t *testing.T, src logic.ItemDataSource, tabs []catalog.TabDescriptor, cfg *config.Config) *App {
	t.Helper()
	a, err := NewApp(src, tabs, cfg, logic.WithSettleInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return a
}

// drain runs cmd and feeds every resulting message back into the app.
// Spinner ticks are dropped so the loop ends.
func drain(a *App, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 500; steps++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, nil:
		default:
			_, next := a.Update(msg)
			queue = append(queue, next)
		}
	}
}

func send(a *App, msg tea.Msg) {
	_, cmd := a.Update(msg)
	drain(a, cmd)
}

func startApp(t *testing.T, cat *catalog.Catalog, cfg *config.Config) *App {
	t.Helper()
	a := newTestApp(t, cat, cat.Descriptors(), cfg)
	send(a, tea.WindowSizeMsg{Width: 100, Height: 30})
	drain(a, a.Init())
	return a
}

func TestApp_LayoutFromWindowSize(t *testing.T) {
	a := startApp(t, testCatalog(t, 20, 3), nil)
	s := a.State()

	// 30 rows minus strip, dots and status bar.
	if a.gridHeight != 24 {
		t.Fatalf("grid height = %d, want 24", a.gridHeight)
	}
	spec := s.Grid.Spec()
	if spec.CellWidth != 20 || spec.CellHeight != 8 {
		t.Errorf("cell = %dx%d, want 20x8", spec.CellWidth, spec.CellHeight)
	}
	if s.Grid.ItemsPerPage() != 15 || s.Grid.PageCount() != 2 {
		t.Errorf("per page %d, pages %d", s.Grid.ItemsPerPage(), s.Grid.PageCount())
	}
	if len(s.Items) != 20 {
		t.Errorf("items = %d, want 20", len(s.Items))
	}

	view := a.View()
	if !strings.Contains(view, "Tab0") || !strings.Contains(view, "0-14") {
		t.Errorf("view is missing the strip or the first page:\n%s", view)
	}
	if strings.Contains(view, "0-15") {
		t.Error("second page rendered at offset 0")
	}
}

func TestApp_FixedCellSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid.CellWidth, cfg.Grid.CellHeight = 25, 6
	a := startApp(t, testCatalog(t, 20), cfg)

	if cols, rows := a.State().Grid.ColumnsPerPage(), a.State().Grid.RowsPerPage(); cols != 4 || rows != 4 {
		t.Errorf("grid = %dx%d, want 4x4", cols, rows)
	}
}

func TestApp_TabKeySelectsNextTab(t *testing.T) {
	a := startApp(t, testCatalog(t, 20, 3), nil)

	send(a, tea.KeyMsg{Type: tea.KeyTab})

	s := a.State()
	if s.Selection.SelectedTab != 1 || a.strip.Selected() != 1 {
		t.Fatalf("selected tab %d, strip %d", s.Selection.SelectedTab, a.strip.Selected())
	}
	if len(s.Items) != 3 || s.Items[0].Title != "1-0" {
		t.Errorf("items not reloaded: %+v", s.Items)
	}
}

func TestApp_ClickTab(t *testing.T) {
	a := startApp(t, testCatalog(t, 20, 3, 0), nil)

	// Third tab: one marker column, then two tabs of 14.
	send(a, tea.MouseMsg{X: 1 + 2*14 + 3, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	if got := a.State().Selection.SelectedTab; got != 2 {
		t.Fatalf("selected tab = %d, want 2", got)
	}
	if !strings.Contains(a.View(), "Nothing here") {
		t.Error("empty tab placeholder missing")
	}
}

func TestApp_ClickCellActivatesItem(t *testing.T) {
	var opened []int
	cat := testCatalog(t, 20)
	a, err := NewApp(cat, cat.Descriptors(), nil, logic.WithItemSelected(func(item, tab int) {
		opened = append(opened, item, tab)
	}))
	if err != nil {
		t.Fatal(err)
	}
	send(a, tea.WindowSizeMsg{Width: 100, Height: 30})
	drain(a, a.Init())

	// Column 1, row 1 of page 0 is item 6; the grid starts below the strip.
	x, y := 25, 4+9
	send(a, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	send(a, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	if len(opened) != 2 || opened[0] != 6 || opened[1] != 0 {
		t.Fatalf("opened = %v, want [6 0]", opened)
	}
	if a.State().StatusMsg != "Selected 0-6" {
		t.Errorf("status = %q", a.State().StatusMsg)
	}
}

func TestApp_DragPagesGrid(t *testing.T) {
	a := startApp(t, testCatalog(t, 20), nil)

	send(a, tea.MouseMsg{X: 80, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	send(a, tea.MouseMsg{X: 60, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	// The pointer may leave the grid while dragging.
	send(a, tea.MouseMsg{X: 40, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	send(a, tea.MouseMsg{X: 40, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	s := a.State()
	if s.Selection.Phase != state.PhaseIdle {
		t.Fatalf("phase = %s, want idle", s.Selection.Phase)
	}
	if s.Selection.LastSettled.X != 100 || s.CurrentPage() != 1 {
		t.Errorf("settled at %+v, page %d", s.Selection.LastSettled, s.CurrentPage())
	}
	if s.Selection.SelectedTab != 0 {
		t.Error("drag release over the strip changed the tab")
	}
}

func TestApp_WindowTooSmallKeepsLayout(t *testing.T) {
	a := startApp(t, testCatalog(t, 20), nil)
	before := a.State().Grid

	// One grid row cannot be split into three cell rows.
	send(a, tea.WindowSizeMsg{Width: 100, Height: 7})

	if a.State().Grid != before {
		t.Error("layout replaced by an invalid one")
	}
	if !strings.Contains(a.View(), "Window too small") {
		t.Error("missing layout error")
	}

	send(a, tea.WindowSizeMsg{Width: 100, Height: 30})
	if strings.Contains(a.View(), "Window too small") {
		t.Error("layout error not cleared")
	}
}

func TestApp_ReloadFailureShowsRetry(t *testing.T) {
	tabs := []catalog.TabDescriptor{{Title: "Remote"}}
	a := newTestApp(t, failingSource{}, tabs, nil)
	send(a, tea.WindowSizeMsg{Width: 80, Height: 20})
	drain(a, a.Init())

	if a.State().Reload.Status != state.ReloadFailed {
		t.Fatalf("status = %s, want failed", a.State().Reload.Status)
	}
	view := a.View()
	if !strings.Contains(view, "backend down") || !strings.Contains(view, "press r to retry") {
		t.Errorf("missing retry hint:\n%s", view)
	}

	gen := a.State().Reload.Generation
	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if a.State().Reload.Generation != gen+1 {
		t.Error("r did not request the tab again")
	}
}

func TestApp_HelpToggle(t *testing.T) {
	a := startApp(t, testCatalog(t, 5), nil)

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !a.State().ShowHelp || !strings.Contains(a.View(), "Keys") {
		t.Fatal("help not shown")
	}

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if a.State().ShowHelp {
		t.Error("help not hidden")
	}
}

func TestApp_InitialTab(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Catalog.InitialTab = 1
	a := startApp(t, testCatalog(t, 4, 7), cfg)

	if a.State().Selection.SelectedTab != 1 || a.strip.Selected() != 1 {
		t.Errorf("started on tab %d", a.State().Selection.SelectedTab)
	}
	if len(a.State().Items) != 7 {
		t.Errorf("items = %d, want 7", len(a.State().Items))
	}
}

func TestApp_ViewBeforeSize(t *testing.T) {
	a := newTestApp(t, testCatalog(t, 1), testCatalog(t, 1).Descriptors(), nil)
	if a.View() != "Loading..." {
		t.Errorf("View() = %q", a.View())
	}
}
