package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saadjs/coach-cli/internal/model"
)

type ImportMode string

const (
	ImportModeReplace ImportMode = "replace"
	ImportModeMerge   ImportMode = "merge"
)

type ImportReport struct {
	Mode            ImportMode `json:"mode"`
	Foods           int        `json:"foods"`
	Entries         int        `json:"entries"`
	WeightSamples   int        `json:"weight_samples"`
	ProfileReplaced bool       `json:"profile_replaced"`
}

func ParseImportMode(value string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ImportModeMerge:
		return ImportModeMerge, nil
	case ImportModeReplace:
		return ImportModeReplace, nil
	}
	return "", fmt.Errorf("invalid import mode %q (use replace|merge)", value)
}

// ExportLedger serializes the ledger document as indented JSON.
func ExportLedger(l *Ledger) ([]byte, error) {
	b, err := json.MarshalIndent(l.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal ledger export: %w", err)
	}
	return b, nil
}

// ImportLedger applies an exported document to l. Replace swaps the whole
// state. Merge adds foods, entries and weight samples that l does not have yet
// and only takes the profile and override when l has none.
func ImportLedger(l *Ledger, data []byte, mode ImportMode) (ImportReport, error) {
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return ImportReport{}, fmt.Errorf("parse ledger import: %w", err)
	}
	src, err := FromSnapshot(snap)
	if err != nil {
		return ImportReport{}, err
	}
	report := ImportReport{Mode: mode}

	if mode == ImportModeReplace {
		l.user = src.user
		l.phaseOverride = src.phaseOverride
		l.foods = src.foods
		l.dailyMeals = src.dailyMeals
		l.weightHistory = src.weightHistory
		report.ProfileReplaced = true
		report.Foods = len(src.foods)
		for _, day := range src.dailyMeals {
			report.Entries += countEntries(day)
		}
		report.WeightSamples = len(src.weightHistory)
		return report, nil
	}

	if !l.user.SetupComplete && src.user.SetupComplete {
		l.user = src.user
		report.ProfileReplaced = true
	}
	if l.phaseOverride == nil && src.phaseOverride != nil {
		l.SetPhaseOverride(src.phaseOverride)
	}
	for _, f := range src.foods {
		if _, ok := l.Food(f.ID); ok {
			continue
		}
		l.foods = append(l.foods, f)
		report.Foods++
	}
	for date, incoming := range src.dailyMeals {
		day := copyDayMeals(l.dailyMeals[date])
		for _, slot := range model.MealSlots {
			entries := day.Entries(slot)
			for _, e := range incoming.Entries(slot) {
				if hasEntry(entries, e.ID) {
					continue
				}
				entries = append(entries, e)
				report.Entries++
			}
			day.SetEntries(slot, entries)
		}
		if !day.IsEmpty() {
			l.dailyMeals[date] = day
		}
	}
	// Existing samples are counted once each so repeated same-day readings in
	// the source survive. History keeps its order; new samples go at the end.
	existing := make(map[model.WeightSample]int, len(l.weightHistory))
	for _, s := range l.weightHistory {
		existing[s]++
	}
	for _, s := range src.weightHistory {
		if existing[s] > 0 {
			existing[s]--
			continue
		}
		l.weightHistory = append(l.weightHistory, s)
		report.WeightSamples++
	}
	return report, nil
}

func countEntries(d model.DayMeals) int {
	n := 0
	for _, slot := range model.MealSlots {
		n += len(d.Entries(slot))
	}
	return n
}

func hasEntry(entries []model.MealEntry, id string) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}
