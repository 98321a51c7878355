package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/coach-cli/internal/model"
)

const dateLayout = "2006-01-02"

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func validateDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// ParseMealSlot accepts the slot names case-insensitively.
func ParseMealSlot(value string) (model.MealSlot, error) {
	slot := model.MealSlot(normalizeName(value))
	for _, s := range model.MealSlots {
		if s == slot {
			return slot, nil
		}
	}
	return "", fmt.Errorf("invalid meal slot %q (use breakfast, lunch, dinner or snacks)", value)
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
