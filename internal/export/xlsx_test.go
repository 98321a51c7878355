package export_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/coach-cli/internal/export"
	"github.com/saadjs/coach-cli/internal/model"
	"github.com/saadjs/coach-cli/internal/service"
	"github.com/xuri/excelize/v2"
)

func sampleReport(t *testing.T) *service.WeeklyReport {
	t.Helper()
	now := time.Date(2024, time.December, 10, 12, 0, 0, 0, time.UTC)
	l := service.NewLedger(service.WithClock(func() time.Time { return now }))
	name := "Ana"
	bw := 80.0
	maint := 2500
	if err := l.SetProfile(service.ProfileInput{Name: &name, BodyWeight: &bw, MaintenanceCalories: &maint}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if _, err := l.AddMealEntry("2024-12-10", model.SlotBreakfast, model.MealEntry{FoodName: "Avena", Quantity: 80, Calories: 300, Protein: 10, Fat: 5, Carbs: 50}); err != nil {
		t.Fatalf("add meal entry: %v", err)
	}
	if _, err := l.AddMealEntry("2024-12-09", model.SlotLunch, model.MealEntry{FoodName: "Pollo", Quantity: 200, Calories: 330, Protein: 62, Fat: 7, Carbs: 0}); err != nil {
		t.Fatalf("add meal entry: %v", err)
	}
	return service.WeeklyReportFor(l, now)
}

func TestWriteWeeklyReportXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "week.xlsx")
	if err := export.WriteWeeklyReportXLSX(sampleReport(t), path); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{export.SheetSummary, export.SheetDays, export.SheetFoods, export.SheetMeals}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("expected sheet %d to be %s, got %s", i, want[i], sheets[i])
		}
	}

	dayRows, err := f.GetRows(export.SheetDays)
	if err != nil {
		t.Fatalf("read days sheet: %v", err)
	}
	if len(dayRows) != 8 {
		t.Fatalf("expected header + 7 day rows, got %d", len(dayRows))
	}
	if dayRows[1][0] != "2024-12-04" || dayRows[7][0] != "2024-12-10" {
		t.Fatalf("unexpected day range %s..%s", dayRows[1][0], dayRows[7][0])
	}

	foodRows, err := f.GetRows(export.SheetFoods)
	if err != nil {
		t.Fatalf("read foods sheet: %v", err)
	}
	if len(foodRows) != 3 {
		t.Fatalf("expected header + 2 food rows, got %d", len(foodRows))
	}

	mealRows, err := f.GetRows(export.SheetMeals)
	if err != nil {
		t.Fatalf("read meals sheet: %v", err)
	}
	if len(mealRows) < 5 || mealRows[1][0] != service.SlotName(model.SlotBreakfast) || mealRows[4][0] != "Snacks" {
		t.Fatalf("expected slot rows with display names, got %v", mealRows)
	}

	period, err := f.GetCellValue(export.SheetSummary, "B2")
	if err != nil {
		t.Fatalf("read period cell: %v", err)
	}
	if period != "2024-12-04 a 2024-12-10" {
		t.Fatalf("unexpected period %q", period)
	}
}

func TestWeeklyReportWorkbookEmptyLedger(t *testing.T) {
	t.Parallel()

	r := service.WeeklyReportFor(service.NewLedger(), time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC))
	f, err := export.WeeklyReportWorkbook(r)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(export.SheetFoods)
	if err != nil {
		t.Fatalf("read foods sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the header row, got %d", len(rows))
	}
}
