package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/asnmemo/internal/catalog"
	"github.com/example/asnmemo/pkg/models"
)

type browseModel struct {
	cat    *catalog.Catalog
	styles Styles
	tier   int // index into models.Tiers
	table  table.Model
}

func newBrowseModel(cat *catalog.Catalog, styles Styles) browseModel {
	columns := []table.Column{
		{Title: "ASN", Width: 10},
		{Title: "Name", Width: 34},
		{Title: "Headquarters", Width: 32},
		{Title: "Specialization", Width: 40},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)
	m := browseModel{cat: cat, styles: styles, table: t}
	m.showTier(0)
	return m
}

func (m *browseModel) setSize(w, h int) {
	if h > 10 {
		m.table.SetHeight(h - 8)
	}
}

func (m *browseModel) showTier(i int) {
	m.tier = i
	var rows []table.Row
	for _, n := range m.cat.ByTier(models.Tiers[i]) {
		rows = append(rows, table.Row{
			fmt.Sprintf("AS%d", n.ASN),
			n.Name,
			orDash(n.Headquarters),
			orDash(n.Specialization),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (a App) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return a.backToMenu()
		case "ctrl+c":
			return a, tea.Quit
		case "1", "2", "3", "4", "5", "6":
			a.browse.showTier(int(key.String()[0] - '1'))
			return a, nil
		case "tab", "right":
			a.browse.showTier((a.browse.tier + 1) % len(models.Tiers))
			return a, nil
		case "shift+tab", "left":
			a.browse.showTier((a.browse.tier + len(models.Tiers) - 1) % len(models.Tiers))
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.browse.table, cmd = a.browse.table.Update(msg)
	return a, cmd
}

func (m browseModel) view() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Browse Networks"))
	b.WriteString("\n\n")

	var tabs []string
	for i, t := range models.Tiers {
		label := fmt.Sprintf("%d:%s", i+1, t)
		if i == m.tier {
			label = m.styles.Selected.Render(label)
		} else {
			label = m.styles.Muted.Render(label)
		}
		tabs = append(tabs, label)
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n" + m.styles.Help.Render("1-6/tab: tier - up/down: scroll - esc: back"))
	return b.String()
}
