package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/asnmemo/internal/scheduler"
)

type menuItem struct {
	label string
	key   string
}

var menuItems = []menuItem{
	{"Study Due Cards", "s"},
	{"Browse All Cards", "b"},
	{"View Statistics", "t"},
	{"Reset Progress", "r"},
	{"Quit", "q"},
}

type menuModel struct {
	sched    *scheduler.Scheduler
	styles   Styles
	cursor   int
	dueCount int
	notice   string
}

func newMenuModel(sched *scheduler.Scheduler, styles Styles) menuModel {
	m := menuModel{sched: sched, styles: styles}
	m.refresh()
	return m
}

func (m *menuModel) refresh() {
	m.dueCount = len(m.sched.DueCards(time.Now()))
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	a.menu.notice = ""

	switch key.String() {
	case "up", "k":
		if a.menu.cursor > 0 {
			a.menu.cursor--
		}
		return a, nil
	case "down", "j":
		if a.menu.cursor < len(menuItems)-1 {
			a.menu.cursor++
		}
		return a, nil
	case "enter":
		return a.selectMenuItem(a.menu.cursor)
	case "s":
		return a.enterStudy()
	case "b":
		return a.enterBrowse()
	case "t":
		return a.enterStats()
	case "r":
		return a.enterReset()
	case "q", "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) selectMenuItem(i int) (tea.Model, tea.Cmd) {
	switch menuItems[i].key {
	case "s":
		return a.enterStudy()
	case "b":
		return a.enterBrowse()
	case "t":
		return a.enterStats()
	case "r":
		return a.enterReset()
	default:
		return a, tea.Quit
	}
}

func (m menuModel) view() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("ASN Memo"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Master Network AS Numbers"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Cards due: %d\n\n", m.dueCount))

	for i, item := range menuItems {
		label := fmt.Sprintf("%s [%s]", item.label, strings.ToUpper(item.key))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + m.styles.Warning.Render(m.notice) + "\n")
	}
	b.WriteString("\n" + m.styles.Help.Render("up/down: move - enter: select - q: quit"))
	return b.String()
}
