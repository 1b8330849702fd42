package tui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type resetModel struct {
	styles Styles
	err    error
}

func newResetModel(styles Styles) resetModel {
	return resetModel{styles: styles}
}

func (a App) updateReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key.String() {
	case "y", "Y":
		if err := a.store.Reset(); err != nil {
			a.reset.err = err
			return a, nil
		}
		if a.journal != nil {
			if err := a.journal.Reset(); err != nil {
				// Progress itself is gone; a stale log is only cosmetic
				log.Printf("failed to clear review log: %v", err)
			}
		}
		model, cmd := a.backToMenu()
		if app, ok := model.(App); ok {
			app.menu.notice = "Progress reset successfully"
			return app, cmd
		}
		return model, cmd
	case "n", "N", "esc":
		return a.backToMenu()
	case "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

func (m resetModel) view() string {
	var b strings.Builder
	b.WriteString(m.styles.Warning.Render("Reset Progress?"))
	b.WriteString("\n\n")
	b.WriteString("This will delete ALL your learning progress.\n")
	b.WriteString("This action cannot be undone.\n")
	if m.err != nil {
		b.WriteString("\n" + m.styles.Warning.Render(fmt.Sprintf("Reset failed: %v", m.err)) + "\n")
	}
	b.WriteString("\n" + m.styles.Help.Render("y: reset - n/esc: cancel"))
	return m.styles.Box.Render(b.String())
}
