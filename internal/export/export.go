// Package export writes learning progress to an Excel workbook: one sheet
// of per-tier statistics and one sheet with the full per-card state.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/asnmemo/internal/catalog"
	"github.com/example/asnmemo/pkg/models"
)

const (
	statsSheet = "Statistics"
	cardsSheet = "Cards"
)

// WriteWorkbook writes statistics and per-card review state to an xlsx
// file at path, replacing any existing file
func WriteWorkbook(path string, cat *catalog.Catalog, records map[string]models.ReviewRecord, stats models.Statistics) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the statistics sheet
	f.SetSheetName("Sheet1", statsSheet)
	if err := writeStats(f, stats); err != nil {
		return err
	}
	f.NewSheet(cardsSheet)
	if err := writeCards(f, cat, records); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeStats(f *excelize.File, stats models.Statistics) error {
	header := []interface{}{"Tier", "Total", "Studied", "Due", "Mastered", "Lapses"}
	if err := f.SetSheetRow(statsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, ts := range stats.ByTier {
		cell := fmt.Sprintf("A%d", row)
		values := []interface{}{string(ts.Tier), ts.Total, ts.Studied, ts.Due, ts.Mastered, ts.Lapses}
		if err := f.SetSheetRow(statsSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write tier row: %w", err)
		}
		row++
	}

	totals := []interface{}{"All", stats.TotalCards, stats.Studied, stats.Due, stats.Mastered, stats.TotalLapses}
	if err := f.SetSheetRow(statsSheet, fmt.Sprintf("A%d", row), &totals); err != nil {
		return fmt.Errorf("failed to write totals row: %w", err)
	}
	return nil
}

func writeCards(f *excelize.File, cat *catalog.Catalog, records map[string]models.ReviewRecord) error {
	header := []interface{}{
		"ASN", "Name", "Tier", "Repetitions", "Interval (days)",
		"Easiness", "Lapses", "Due", "Last reviewed",
	}
	if err := f.SetSheetRow(cardsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, n := range cat.All() {
		rec, studied := records[n.ID()]
		values := []interface{}{
			fmt.Sprintf("AS%d", n.ASN), n.Name, string(n.Tier),
		}
		if studied {
			values = append(values,
				rec.Repetitions, rec.IntervalDays, rec.EasinessFactor, rec.Lapses,
				rec.DueAt.Format(time.RFC3339), formatReviewed(rec.LastReviewedAt),
			)
		} else {
			values = append(values, 0, 0, models.DefaultEasinessFactor, 0, "", "never")
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(cardsSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write card row: %w", err)
		}
	}
	return nil
}

func formatReviewed(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(time.RFC3339)
}
