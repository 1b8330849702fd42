package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/asnmemo/internal/scheduler"
	"github.com/example/asnmemo/pkg/models"
)

type statsModel struct {
	styles Styles
	stats  models.Statistics
}

func newStatsModel(sched *scheduler.Scheduler, styles Styles) statsModel {
	return statsModel{
		styles: styles,
		stats:  sched.Statistics(time.Now()),
	}
}

func (a App) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter", "q":
			return a.backToMenu()
		case "ctrl+c":
			return a, tea.Quit
		}
	}
	return a, nil
}

func (m statsModel) view() string {
	s := m.stats
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Learning Statistics"))
	b.WriteString("\n\n")

	var box strings.Builder
	box.WriteString(fmt.Sprintf("Total Networks in Catalog: %d\n", s.TotalCards))
	box.WriteString(fmt.Sprintf("Cards Studied: %d / %d\n", s.Studied, s.TotalCards))
	box.WriteString(fmt.Sprintf("Due for Review: %d\n", s.Due))
	box.WriteString(fmt.Sprintf("Mastered (%d+ correct reviews): %d\n", scheduler.MasteredThreshold, s.Mastered))
	box.WriteString(fmt.Sprintf("Still Learning: %d\n", s.Learning))
	box.WriteString(fmt.Sprintf("Total Lapses: %d\n", s.TotalLapses))
	if s.Studied > 0 {
		box.WriteString(fmt.Sprintf("Average Ease Factor: %.2f\n", s.AverageEase))
	}
	box.WriteString(fmt.Sprintf("Reviews Today: %d\n", s.ReviewsToday))
	b.WriteString(m.styles.Box.Render(box.String()))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-18s %6s %8s %5s %9s %7s\n", "Tier", "Total", "Studied", "Due", "Mastered", "Lapses"))
	b.WriteString(m.styles.Muted.Render(strings.Repeat("-", 58)))
	b.WriteString("\n")
	for _, ts := range s.ByTier {
		b.WriteString(fmt.Sprintf("%-18s %6d %8d %5d %9d %7d\n",
			string(ts.Tier), ts.Total, ts.Studied, ts.Due, ts.Mastered, ts.Lapses))
	}

	b.WriteString("\n" + m.styles.Help.Render("esc: back to menu"))
	return b.String()
}
