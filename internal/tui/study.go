package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/asnmemo/internal/scheduler"
	"github.com/example/asnmemo/internal/spaced_repetition"
	"github.com/example/asnmemo/pkg/models"
)

type studyModel struct {
	sched    *scheduler.Scheduler
	styles   Styles
	queue    []models.Network
	total    int
	done     int
	revealed bool
	saveErr  error
	bar      progress.Model
}

func newStudyModel(sched *scheduler.Scheduler, newLimit int, styles Styles) studyModel {
	queue := sched.SessionQueue(time.Now(), newLimit)
	return studyModel{
		sched:  sched,
		styles: styles,
		queue:  queue,
		total:  len(queue),
		bar:    progress.New(progress.WithDefaultGradient()),
	}
}

func (m studyModel) current() (models.Network, bool) {
	if len(m.queue) == 0 {
		return models.Network{}, false
	}
	return m.queue[0], true
}

func (a App) updateStudy(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if _, active := a.study.current(); !active {
		// Session complete view
		switch key.String() {
		case "enter", "esc", "q":
			return a.backToMenu()
		}
		return a, nil
	}

	switch key.String() {
	case "esc":
		return a.backToMenu()
	case "ctrl+c":
		return a, tea.Quit
	case " ", "space":
		a.study.revealed = true
		return a, nil
	case "1":
		return a.rateCard(spaced_repetition.RatingAgain)
	case "2":
		return a.rateCard(spaced_repetition.RatingHard)
	case "3":
		return a.rateCard(spaced_repetition.RatingGood)
	case "4":
		return a.rateCard(spaced_repetition.RatingEasy)
	}
	return a, nil
}

// rateCard grades the current card and advances the queue. A failed save
// keeps the card on screen so the grade can be retried instead of silently
// vanishing.
func (a App) rateCard(rating spaced_repetition.Rating) (tea.Model, tea.Cmd) {
	card, ok := a.study.current()
	if !ok || !a.study.revealed {
		return a, nil
	}

	if _, err := a.sched.Grade(card.ID(), rating, time.Now()); err != nil {
		a.study.saveErr = err
		return a, nil
	}

	a.study.saveErr = nil
	a.study.queue = a.study.queue[1:]
	a.study.done++
	a.study.revealed = false
	return a, nil
}

func (m studyModel) view() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Study Session"))
	b.WriteString("\n\n")

	card, ok := m.current()
	if !ok {
		if m.total == 0 {
			b.WriteString("No cards due right now. Come back later!\n")
		} else {
			b.WriteString(m.styles.Answer.Render("Session Complete!"))
			b.WriteString(fmt.Sprintf("\n\nCards reviewed: %d\n", m.done))
			b.WriteString("Great work! Keep practicing.\n")
		}
		b.WriteString("\n" + m.styles.Help.Render("enter: back to menu"))
		return b.String()
	}

	if m.total > 0 {
		b.WriteString(m.bar.ViewAs(float64(m.done) / float64(m.total)))
		b.WriteString(fmt.Sprintf("\nCard %d of %d\n\n", m.done+1, m.total))
	}

	var face strings.Builder
	face.WriteString(m.styles.Tier.Render(fmt.Sprintf("[%s]", card.Tier)))
	face.WriteString("\n")
	face.WriteString(m.styles.CardName.Render(card.Name))
	face.WriteString("\n")
	if card.Headquarters != "" {
		face.WriteString(m.styles.Muted.Render(card.Headquarters))
		face.WriteString("\n")
	}
	face.WriteString("\nWhat is the AS Number?\n")

	if m.revealed {
		face.WriteString("\n")
		face.WriteString(m.styles.Answer.Render(fmt.Sprintf("AS%d", card.ASN)))
		face.WriteString("\n")
		if card.Specialization != "" {
			face.WriteString(card.Specialization + "\n")
		}
		for _, fact := range card.Facts {
			face.WriteString(m.styles.Muted.Render("  - " + fact))
			face.WriteString("\n")
		}
	}
	b.WriteString(m.styles.Box.Render(face.String()))
	b.WriteString("\n")

	if m.saveErr != nil {
		b.WriteString("\n" + m.styles.Warning.Render(fmt.Sprintf("Failed to save progress: %v. Rate again to retry.", m.saveErr)) + "\n")
	}

	if m.revealed {
		b.WriteString("\n" + m.styles.Help.Render("1: again - 2: hard - 3: good - 4: easy - esc: back"))
	} else {
		b.WriteString("\n" + m.styles.Help.Render("space: reveal answer - esc: back"))
	}
	return b.String()
}
