// Package tui is the terminal front end: a bubbletea program with a main
// menu, a flash-card study screen, a catalog browser and a statistics
// view. All scheduling decisions are delegated to the scheduler package;
// the TUI only renders state and translates keys into ratings.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/asnmemo/internal/catalog"
	"github.com/example/asnmemo/internal/history"
	"github.com/example/asnmemo/internal/progress"
	"github.com/example/asnmemo/internal/scheduler"
)

// Config carries the presentation-layer settings
type Config struct {
	// Maximum never-studied cards introduced per study session
	NewPerSession int
}

// DefaultConfig returns the default presentation settings
func DefaultConfig() Config {
	return Config{NewPerSession: scheduler.DefaultNewPerSession}
}

type screen int

const (
	screenMenu screen = iota
	screenStudy
	screenBrowse
	screenStats
	screenReset
)

// RefreshDueMsg asks the program to recompute the due-card count. The
// count itself is computed here, on the program goroutine, so background
// senders never read scheduler state.
type RefreshDueMsg struct{}

// App is the root bubbletea model
type App struct {
	cfg     Config
	sched   *scheduler.Scheduler
	store   *progress.Store
	journal *history.Log // nil when the review log is disabled
	cat     *catalog.Catalog
	styles  Styles

	screen screen
	menu   menuModel
	study  studyModel
	browse browseModel
	stats  statsModel
	reset  resetModel

	width  int
	height int
}

// NewApp assembles the root model. journal may be nil.
func NewApp(cfg Config, sched *scheduler.Scheduler, store *progress.Store, journal *history.Log, cat *catalog.Catalog) App {
	styles := DefaultStyles()
	return App{
		cfg:     cfg,
		sched:   sched,
		store:   store,
		journal: journal,
		cat:     cat,
		styles:  styles,
		screen:  screenMenu,
		menu:    newMenuModel(sched, styles),
		browse:  newBrowseModel(cat, styles),
	}
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browse.setSize(msg.Width, msg.Height)
		return a, nil
	case RefreshDueMsg:
		a.menu.refresh()
		return a, nil
	}

	switch a.screen {
	case screenMenu:
		return a.updateMenu(msg)
	case screenStudy:
		return a.updateStudy(msg)
	case screenBrowse:
		return a.updateBrowse(msg)
	case screenStats:
		return a.updateStats(msg)
	case screenReset:
		return a.updateReset(msg)
	}
	return a, nil
}

// View implements tea.Model
func (a App) View() string {
	switch a.screen {
	case screenStudy:
		return a.study.view()
	case screenBrowse:
		return a.browse.view()
	case screenStats:
		return a.stats.view()
	case screenReset:
		return a.reset.view()
	default:
		return a.menu.view()
	}
}

// enter transitions handle per-screen setup so every visit starts from a
// consistent state.

func (a App) enterStudy() (tea.Model, tea.Cmd) {
	a.study = newStudyModel(a.sched, a.cfg.NewPerSession, a.styles)
	a.screen = screenStudy
	return a, nil
}

func (a App) enterBrowse() (tea.Model, tea.Cmd) {
	a.screen = screenBrowse
	return a, nil
}

func (a App) enterStats() (tea.Model, tea.Cmd) {
	a.stats = newStatsModel(a.sched, a.styles)
	a.screen = screenStats
	return a, nil
}

func (a App) enterReset() (tea.Model, tea.Cmd) {
	a.reset = newResetModel(a.styles)
	a.screen = screenReset
	return a, nil
}

func (a App) backToMenu() (tea.Model, tea.Cmd) {
	a.menu.refresh()
	a.screen = screenMenu
	return a, nil
}
