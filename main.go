package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/example/asnmemo/internal/catalog"
	"github.com/example/asnmemo/internal/export"
	"github.com/example/asnmemo/internal/history"
	"github.com/example/asnmemo/internal/progress"
	"github.com/example/asnmemo/internal/reminder"
	"github.com/example/asnmemo/internal/scheduler"
	"github.com/example/asnmemo/internal/tui"
)

func main() {
	// Optional .env next to the binary; real env wins
	_ = godotenv.Load()

	exportPath := flag.String("export", "", "write progress statistics to an xlsx file and exit")
	flag.Parse()

	stateDir := os.Getenv("ASNMEMO_STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		stateDir = filepath.Join(home, ".asnmemo")
	}
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		log.Fatalf("Failed to create state directory: %v", err)
	}

	// The TUI owns the terminal, so the default logger goes to a file
	logFile, err := os.OpenFile(filepath.Join(stateDir, "asnmemo.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	store := progress.NewStore(stateDir)
	if _, err := store.Load(); err != nil {
		var corrupt *progress.CorruptStateError
		if errors.As(err, &corrupt) {
			// Deliberate recovery: start fresh rather than guess at
			// partially parsed records
			log.Printf("Progress snapshot is corrupt, starting fresh: %v", err)
		} else {
			log.Fatalf("Failed to load progress: %v", err)
		}
	}

	var journal *history.Log
	if os.Getenv("ASNMEMO_HISTORY") != "off" {
		journal, err = history.Open(stateDir)
		if err != nil {
			// Studying works without the log
			log.Printf("Review log unavailable: %v", err)
			journal = nil
		} else {
			defer journal.Close()
		}
	}

	cat := catalog.Default()

	var journalView scheduler.ReviewLog
	if journal != nil {
		journalView = journal
	}
	sched := scheduler.New(cat, store, journalView)

	if *exportPath != "" {
		stats := sched.Statistics(time.Now())
		if err := export.WriteWorkbook(*exportPath, cat, store.Records(), stats); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported progress for %d cards to %s\n", cat.Len(), *exportPath)
		return
	}

	cfg := tui.DefaultConfig()
	if v := os.Getenv("ASNMEMO_NEW_PER_SESSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.NewPerSession = n
		}
	}

	app := tui.NewApp(cfg, sched, store, journal, cat)
	program := tea.NewProgram(app, tea.WithAltScreen())

	rem := reminder.New(programNotifier{program})
	rem.Start()
	defer rem.Stop()

	if _, err := program.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// programNotifier forwards background refresh ticks into the running
// bubbletea program; the due count is computed on the program goroutine
type programNotifier struct {
	program *tea.Program
}

func (n programNotifier) NotifyDueRefresh() {
	n.program.Send(tui.RefreshDueMsg{})
}
