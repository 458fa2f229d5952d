// Package tui provides the terminal user interface for the tabbed grid.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/catalog"
	"github.com/hy4ri/tabgrid/internal/config"
	"github.com/hy4ri/tabgrid/internal/layout"
	"github.com/hy4ri/tabgrid/internal/tui/components"
	"github.com/hy4ri/tabgrid/internal/tui/logic"
	"github.com/hy4ri/tabgrid/internal/tui/state"
	"github.com/hy4ri/tabgrid/internal/tui/styles"
)

// Fixed rows below the grid: the page dots and the status bar.
const (
	dotsHeight   = 1
	statusHeight = 1
)

// placeholderSpec lays the grid out until the first WindowSizeMsg arrives.
var placeholderSpec = layout.GridSpec{CellWidth: 1, CellHeight: 1, ViewportWidth: 1, ViewportHeight: 1}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config  *config.Config
	state   *state.State
	handler *logic.Handler

	// UI Components
	strip   *components.TabStripModel
	grid    *components.PageGridModel
	help    help.Model
	spinner spinner.Model

	initialTab int
	gridHeight int
	layoutErr  error // last rejected layout; the previous one stays in effect
}

// NewApp creates a new App over the tabs served by source.
func NewApp(source logic.ItemDataSource, tabs []catalog.TabDescriptor, cfg *config.Config, opts ...logic.Option) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	st := state.New(tabs)
	opts = append([]logic.Option{logic.WithNotifications(cfg.UI.NotifyOnSelect)}, opts...)
	handler, err := logic.NewHandler(st, source, placeholderSpec, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid controller: %w", err)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSeparator
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.HelpSeparator

	strip := components.NewTabStrip(st.Tabs, handler.Keymap())
	strip.SetColors(cfg.UI.SelectionColor, cfg.UI.TabTitleColor, cfg.UI.TabBackgroundColor)
	if cfg.UI.TabWidth > 0 {
		strip.SetTabWidth(cfg.UI.TabWidth)
	}

	grid := components.NewPageGrid(st, handler)
	grid.SetSelectionColor(cfg.UI.SelectionColor)

	return &App{
		config:     cfg,
		state:      st,
		handler:    handler,
		strip:      strip,
		grid:       grid,
		help:       h,
		spinner:    s,
		initialTab: cfg.Catalog.InitialTab,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.loadInitialTab(),
	)
}

// loadInitialTab selects the configured start tab, falling back to the
// first one.
func (a *App) loadInitialTab() tea.Cmd {
	if a.initialTab > 0 && a.initialTab < a.state.TabCount() {
		cmd, err := a.handler.SelectTab(a.initialTab)
		if err == nil {
			a.strip.SetSelected(a.initialTab)
			return cmd
		}
	}
	return a.handler.Init()
}

// State exposes the widget state for inspection.
func (a *App) State() *state.State {
	return a.state
}
