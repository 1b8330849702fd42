// Package reminder nudges the UI to refresh its due-card count in the
// background, so the menu reflects cards that become due during a long
// session. The reminder only emits ticks: computing the count happens on
// the UI's own goroutine, which keeps the progress store single-threaded.
package reminder

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Notifier receives the periodic refresh signal
type Notifier interface {
	NotifyDueRefresh()
}

// Reminder periodically asks the notifier to recompute how many cards are
// due
type Reminder struct {
	cron     *gocron.Scheduler
	notifier Notifier
}

// New creates a reminder that signals the notifier
func New(notifier Notifier) *Reminder {
	return &Reminder{
		cron:     gocron.NewScheduler(time.UTC),
		notifier: notifier,
	}
}

// Start begins the periodic refresh, once per minute, non-blocking
func (r *Reminder) Start() {
	if _, err := r.cron.Every(1).Minute().Do(r.refresh); err != nil {
		log.Printf("failed to schedule due-count refresh: %v", err)
		return
	}
	r.cron.StartAsync()
}

// Stop terminates the periodic refresh
func (r *Reminder) Stop() {
	r.cron.Stop()
}

func (r *Reminder) refresh() {
	r.notifier.NotifyDueRefresh()
}
