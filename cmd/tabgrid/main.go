// Package main is the entry point for the tabgrid terminal browser.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabgrid/internal/catalog"
	"github.com/hy4ri/tabgrid/internal/config"
	"github.com/hy4ri/tabgrid/internal/logger"
	"github.com/hy4ri/tabgrid/internal/tui"
	"github.com/hy4ri/tabgrid/internal/tui/logic"
	"github.com/joho/godotenv"
)

const version = "0.1.0"

const helpText = `tabgrid - Tabbed, paged item grid for the terminal

USAGE:
    tabgrid [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --catalog PATH      Load items from a catalog file
    --tab N             Start on tab N (1-based)
    --debug             Write debug messages to the log file
                        (~/.config/tabgrid/tabgrid.log unless log.path is set)

CONFIGURATION:
    Config file: ~/.config/tabgrid/config.yaml
    Override with TABGRID_CONFIG; variables may also come from a .env file.

KEYBINDINGS:
    Tabs:
        Tab/S-Tab   Next/previous tab
        1-9         Go to tab
        Click       Select tab

    Grid:
        h/j/k/l     Move cursor (arrows work too)
        [ / ]       Previous/next page
        gg/G        First/last page
        Enter       Open item
        Drag        Scroll pages with the mouse

    Other:
        y           Copy item title
        r           Reload tab
        ?           Show help
        q           Quit
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		debug       bool
		catalogPath string
		startTab    int
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&catalogPath, "catalog", "", "Catalog file")
	flag.IntVar(&startTab, "tab", 0, "Start tab (1-based)")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tabgrid version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if startTab > 0 {
		cfg.Catalog.InitialTab = startTab - 1
	}
	if debug {
		cfg.Log.Debug = true
	}

	return runApp(cfg)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	path, err = config.WriteTemplate()
	if err != nil {
		return err
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config) error {
	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	closer, err := logger.Init(logPath, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	onSelected := func(item, tab int) {
		logger.Printf("opened item %d of tab %d", item, tab)
	}

	app, err := tui.NewApp(cat, cat.Descriptors(), cfg, logic.WithItemSelected(onSelected))
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
