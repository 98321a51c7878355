package service_test

import (
	"testing"

	"github.com/saadjs/coach-cli/internal/model"
	"github.com/saadjs/coach-cli/internal/service"
)

func TestKeyValueStore(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, ok, err := service.GetValue(db, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := service.PutValue(db, "Theme", "dark"); err != nil {
		t.Fatalf("put value: %v", err)
	}
	if err := service.PutValue(db, "theme", "light"); err != nil {
		t.Fatalf("upsert value: %v", err)
	}
	value, ok, err := service.GetValue(db, "THEME")
	if err != nil || !ok || value != "light" {
		t.Fatalf("expected upserted value, got %q ok=%v err=%v", value, ok, err)
	}
	keys, err := service.ListKeys(db)
	if err != nil || len(keys) != 1 || keys[0] != "theme" {
		t.Fatalf("expected single normalized key, got %v (%v)", keys, err)
	}
	if err := service.PutValue(db, " ", "x"); err == nil {
		t.Fatalf("expected empty key error")
	}
}

func TestLoadLedgerFreshWhenAbsent(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	l, err := service.LoadLedger(db)
	if err != nil {
		t.Fatalf("load ledger: %v", err)
	}
	if l.Profile().SetupComplete || len(l.Foods()) != 0 {
		t.Fatalf("expected fresh ledger, got %+v", l.Profile())
	}
}

func TestSaveAndLoadLedger(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := day(2024, 12, 10)
	l := newProfiledLedger(t, now)
	food, err := l.AddFood(service.FoodInput{Name: "Pollo", Calories: 165, Protein: 31, Fat: 3.6})
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	entry, err := l.LogFood("2024-12-10", model.SlotLunch, food.ID, 200)
	if err != nil {
		t.Fatalf("log food: %v", err)
	}
	if err := l.UpdateBodyWeight(79.5); err != nil {
		t.Fatalf("update weight: %v", err)
	}
	l.SetPhaseOverride(&model.PhaseOverride{Phase: 3, SubPhase: service.SubPhasePulido})

	if err := service.SaveLedger(db, l); err != nil {
		t.Fatalf("save ledger: %v", err)
	}
	if err := service.SaveLedger(db, l); err != nil {
		t.Fatalf("save ledger twice: %v", err)
	}

	loaded, err := service.LoadLedger(db, fixedClock(now))
	if err != nil {
		t.Fatalf("load ledger: %v", err)
	}
	if loaded.Profile() != l.Profile() {
		t.Fatalf("expected profile %+v, got %+v", l.Profile(), loaded.Profile())
	}
	if got, ok := loaded.Food(food.ID); !ok || got != food {
		t.Fatalf("expected food %+v, got %+v", food, got)
	}
	meals, ok := loaded.DayMeals("2024-12-10")
	if !ok || len(meals.Lunch) != 1 || meals.Lunch[0] != entry {
		t.Fatalf("expected logged entry %+v, got %+v", entry, meals.Lunch)
	}
	if o := loaded.PhaseOverride(); o == nil || o.SubPhase != service.SubPhasePulido {
		t.Fatalf("expected override to persist, got %+v", o)
	}
	if h := loaded.WeightHistory(); len(h) != 1 || h[0].Weight != 79.5 {
		t.Fatalf("expected weight history to persist, got %+v", h)
	}
}

func TestLoadLedgerRejectsCorruptDocument(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.PutValue(db, "ledger", "{not json"); err != nil {
		t.Fatalf("put value: %v", err)
	}
	if _, err := service.LoadLedger(db); err == nil {
		t.Fatalf("expected corrupt document error")
	}
	if err := service.PutValue(db, "ledger", `{"schema_version": 7}`); err != nil {
		t.Fatalf("put value: %v", err)
	}
	if _, err := service.LoadLedger(db); err == nil {
		t.Fatalf("expected future schema version error")
	}
}

func TestReportExportLog(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := day(2024, 12, 10)
	r := service.WeeklyReportFor(service.NewLedger(fixedClock(now)), now)
	if _, err := service.RecordReportExport(db, r, "text", "/tmp/week.txt"); err != nil {
		t.Fatalf("record export: %v", err)
	}
	if _, err := service.RecordReportExport(db, r, "xlsx", "/tmp/week.xlsx"); err != nil {
		t.Fatalf("record export: %v", err)
	}
	if _, err := service.RecordReportExport(db, r, "pdf", "/tmp/week.pdf"); err == nil {
		t.Fatalf("expected unsupported format to be rejected")
	}

	items, err := service.ListReportExports(db, 10)
	if err != nil {
		t.Fatalf("list exports: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(items))
	}
	if items[0].Format != "xlsx" || items[0].FromDate != "2024-12-04" || items[0].ToDate != "2024-12-10" {
		t.Fatalf("expected newest export first, got %+v", items[0])
	}
}
