package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/saadjs/coach-cli/internal/model"
)

// AddMealEntry stores a copy of entry under a fresh id in the date/slot bucket,
// creating the day if needed.
func (l *Ledger) AddMealEntry(date string, slot model.MealSlot, entry model.MealEntry) (model.MealEntry, error) {
	date, err := validateDate(date)
	if err != nil {
		return model.MealEntry{}, err
	}
	slot, err = ParseMealSlot(string(slot))
	if err != nil {
		return model.MealEntry{}, err
	}
	entry.FoodName = strings.TrimSpace(entry.FoodName)
	if entry.FoodName == "" {
		return model.MealEntry{}, fmt.Errorf("entry food name is required")
	}
	if entry.Quantity <= 0 {
		return model.MealEntry{}, fmt.Errorf("quantity must be > 0")
	}
	if err := validateNonNegativeInt("calories", entry.Calories); err != nil {
		return model.MealEntry{}, err
	}
	if err := validateNonNegativeFloat("protein", entry.Protein); err != nil {
		return model.MealEntry{}, err
	}
	if err := validateNonNegativeFloat("fat", entry.Fat); err != nil {
		return model.MealEntry{}, err
	}
	if err := validateNonNegativeFloat("carbs", entry.Carbs); err != nil {
		return model.MealEntry{}, err
	}
	entry.ID = l.newID()

	day := l.dailyMeals[date]
	if !day.SetEntries(slot, append(append([]model.MealEntry(nil), day.Entries(slot)...), entry)) {
		return model.MealEntry{}, fmt.Errorf("invalid meal slot %q", slot)
	}
	l.dailyMeals[date] = day
	return entry, nil
}

// LogFood snapshots grams of a catalog food into a meal slot.
func (l *Ledger) LogFood(date string, slot model.MealSlot, foodRef string, grams float64) (model.MealEntry, error) {
	if grams <= 0 {
		return model.MealEntry{}, fmt.Errorf("quantity must be > 0")
	}
	food, ok := l.FindFood(foodRef)
	if !ok {
		return model.MealEntry{}, fmt.Errorf("food %q not found", foodRef)
	}
	return l.AddMealEntry(date, slot, ScaleFood(food, grams))
}

// RemoveMealEntry reports whether an entry was removed. Missing days, slots or
// ids are a no-op. A day left without entries is dropped.
func (l *Ledger) RemoveMealEntry(date string, slot model.MealSlot, entryID string) bool {
	slot, err := ParseMealSlot(string(slot))
	if err != nil {
		return false
	}
	day, ok := l.dailyMeals[date]
	if !ok {
		return false
	}
	entries := day.Entries(slot)
	kept := make([]model.MealEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return false
	}
	day.SetEntries(slot, kept)
	if day.IsEmpty() {
		delete(l.dailyMeals, date)
		return true
	}
	l.dailyMeals[date] = day
	return true
}

func (l *Ledger) DayMeals(date string) (model.DayMeals, bool) {
	day, ok := l.dailyMeals[date]
	if !ok {
		return model.DayMeals{}, false
	}
	return copyDayMeals(day), true
}

// Dates lists days with logged entries in ascending order.
func (l *Ledger) Dates() []string {
	out := make([]string, 0, len(l.dailyMeals))
	for date := range l.dailyMeals {
		out = append(out, date)
	}
	sort.Strings(out)
	return out
}

// DailyProgress sums every entry of every slot for the date.
func (l *Ledger) DailyProgress(date string) model.MacroTotals {
	day, ok := l.dailyMeals[date]
	if !ok {
		return model.MacroTotals{}
	}
	var totals model.MacroTotals
	for _, slot := range model.MealSlots {
		addEntries(&totals, day.Entries(slot))
	}
	return totals
}

func addEntries(totals *model.MacroTotals, entries []model.MealEntry) {
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.Protein += e.Protein
		totals.Fat += e.Fat
		totals.Carbs += e.Carbs
	}
}
